package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/services"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// AdvisoryController handles the simulated crop-disease analysis.
type AdvisoryController struct {
	Advisory *services.AdvisoryService
}

// NewAdvisoryController creates an AdvisoryController.
func NewAdvisoryController(advisory *services.AdvisoryService) *AdvisoryController {
	return &AdvisoryController{Advisory: advisory}
}

// DetectRequest carries the uploaded crop photo as a base64 string. The
// image is never inspected; the analysis is a simulation.
type DetectRequest struct {
	Image string `json:"image"`
}

// Detect runs the simulated analysis and returns a canned diagnosis.
func (c *AdvisoryController) Detect(ctx *gin.Context) {
	var req DetectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if req.Image == "" {
		utils.BadRequest(ctx, "Please take or upload a photo of your crop first.")
		return
	}

	result, err := c.Advisory.Analyze(ctx.Request.Context())
	if err != nil {
		if err == context.Canceled {
			return
		}
		utils.InternalServerError(ctx, "Analysis failed. Please try again.")
		return
	}
	utils.Success(ctx, result)
}
