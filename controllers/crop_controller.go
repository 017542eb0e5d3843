package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/services"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// CropController handles the crop record collection and its analytics.
type CropController struct {
	Crops *services.CropService
}

// NewCropController creates a CropController.
func NewCropController(crops *services.CropService) *CropController {
	return &CropController{Crops: crops}
}

// List returns all crop records.
func (c *CropController) List(ctx *gin.Context) {
	utils.Success(ctx, c.Crops.List())
}

// Create adds a crop record.
func (c *CropController) Create(ctx *gin.Context) {
	var req services.CropInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Crops.Add(req)
	if !res.Success {
		utils.BadRequest(ctx, res.Message)
		return
	}
	utils.Created(ctx, res)
}

// Update edits the crop with the id from the path.
func (c *CropController) Update(ctx *gin.Context) {
	var req models.CropUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Crops.Update(ctx.Param("id"), req)
	if !res.Success {
		utils.NotFound(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}

// Delete removes the crop with the id from the path.
func (c *CropController) Delete(ctx *gin.Context) {
	res := c.Crops.Remove(ctx.Param("id"))
	if !res.Success {
		utils.NotFound(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}

// Analytics returns the total area and per-crop shares.
func (c *CropController) Analytics(ctx *gin.Context) {
	utils.Success(ctx, c.Crops.Analytics())
}
