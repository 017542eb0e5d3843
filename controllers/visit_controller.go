package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/services"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// VisitController handles the field-visit collection and its frequency
// chart data.
type VisitController struct {
	Visits *services.VisitService
}

// NewVisitController creates a VisitController.
func NewVisitController(visits *services.VisitService) *VisitController {
	return &VisitController{Visits: visits}
}

// List returns all visit records.
func (c *VisitController) List(ctx *gin.Context) {
	utils.Success(ctx, c.Visits.List())
}

// Create records a manual visit.
func (c *VisitController) Create(ctx *gin.Context) {
	var req services.VisitInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Visits.Add(req)
	if !res.Success {
		utils.BadRequest(ctx, res.Message)
		return
	}
	utils.Created(ctx, res)
}

// Update edits the visit with the id from the path.
func (c *VisitController) Update(ctx *gin.Context) {
	var req models.VisitUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Visits.Update(ctx.Param("id"), req)
	if !res.Success {
		utils.NotFound(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}

// Delete removes the visit with the id from the path.
func (c *VisitController) Delete(ctx *gin.Context) {
	res := c.Visits.Remove(ctx.Param("id"))
	if !res.Success {
		utils.NotFound(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}

// Frequency returns per-date visit counts and the overall total.
func (c *VisitController) Frequency(ctx *gin.Context) {
	utils.Success(ctx, c.Visits.Frequency())
}
