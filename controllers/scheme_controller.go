package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/services"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// SchemeController handles the scheme catalogue and per-user enrollment.
type SchemeController struct {
	Schemes *services.SchemeService
}

// NewSchemeController creates a SchemeController.
func NewSchemeController(schemes *services.SchemeService) *SchemeController {
	return &SchemeController{Schemes: schemes}
}

// Catalogue returns the available schemes.
func (c *SchemeController) Catalogue(ctx *gin.Context) {
	utils.Success(ctx, c.Schemes.Catalogue())
}

// Current returns the calling user's enrollment, null when not enrolled.
func (c *SchemeController) Current(ctx *gin.Context) {
	userID := ctx.GetString("userID")
	utils.Success(ctx, gin.H{"enrollment": c.Schemes.Get(userID)})
}

// ApplyRequest names the catalogue scheme to enroll in.
type ApplyRequest struct {
	SchemeID string `json:"schemeId" binding:"required"`
}

// Apply enrolls the calling user, replacing any previous enrollment.
func (c *SchemeController) Apply(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	var req ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	scheme := c.Schemes.SchemeByID(req.SchemeID)
	if scheme == nil {
		utils.NotFound(ctx, "Scheme not found")
		return
	}

	res := c.Schemes.Apply(userID, *scheme)
	if !res.Success {
		utils.InternalServerError(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}

// Withdraw removes the calling user's enrollment. Idempotent.
func (c *SchemeController) Withdraw(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	res := c.Schemes.Withdraw(userID)
	if !res.Success {
		utils.InternalServerError(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}
