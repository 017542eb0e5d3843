package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/services"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// UserController handles profile reads/updates and the admin overview.
type UserController struct {
	Users *services.UserService
}

// NewUserController creates a UserController.
func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// Profile returns the calling user's record.
func (c *UserController) Profile(ctx *gin.Context) {
	userID := ctx.GetString("userID")
	user := c.Users.FindByID(userID)
	if user == nil {
		utils.NotFound(ctx, "User not found")
		return
	}
	utils.Success(ctx, user.Redacted())
}

// UpdateProfile merges the submitted fields over the calling user's record.
// When that user is the current session the session copy is refreshed too.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	var req models.UserUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Users.Update(userID, req)
	if !res.Success {
		if res.Message == "User not found" {
			utils.NotFound(ctx, res.Message)
			return
		}
		utils.BadRequest(ctx, res.Message)
		return
	}

	redacted := res.User.Redacted()
	res.User = &redacted
	utils.Success(ctx, res)
}

// Overview returns user counts grouped by state and role for the admin
// dashboard.
func (c *UserController) Overview(ctx *gin.Context) {
	users := c.Users.ListUsers()
	utils.Success(ctx, gin.H{
		"totalUsers": len(users),
		"byState":    c.Users.CountByState(),
		"byRole":     c.Users.CountByRole(),
	})
}

// ClearAll wipes the users collection and session. Admin-only development
// helper.
func (c *UserController) ClearAll(ctx *gin.Context) {
	res := c.Users.ClearAll()
	if !res.Success {
		utils.InternalServerError(ctx, res.Message)
		return
	}
	utils.Success(ctx, res)
}
