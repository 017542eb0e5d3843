package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/middleware"
	"github.com/khavyaindhu/farmersupportapp/models"
	"github.com/khavyaindhu/farmersupportapp/services"
	"github.com/khavyaindhu/farmersupportapp/utils"
)

// AuthController handles registration, login and the durable session.
type AuthController struct {
	Users   *services.UserService
	Session *services.SessionService
	Secret  string
}

// NewAuthController creates an AuthController.
func NewAuthController(users *services.UserService, session *services.SessionService, secret string) *AuthController {
	return &AuthController{Users: users, Session: session, Secret: secret}
}

// LoginRequest is the login payload: all three factors must match one
// active record.
type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
}

// Register creates a new account.
func (c *AuthController) Register(ctx *gin.Context) {
	var req models.Registration
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Users.Register(req)
	if !res.Success {
		utils.BadRequest(ctx, res.Message)
		return
	}

	redacted := res.User.Redacted()
	res.User = &redacted
	utils.Created(ctx, res)
}

// Login matches credentials, persists the durable session and issues a
// bearer token.
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	res := c.Users.Login(req.MobileNumber, req.Password, models.Role(req.Role))
	if !res.Success {
		utils.Unauthorized(ctx, res.Message)
		return
	}

	if err := c.Session.Save(*res.User); err != nil {
		utils.InternalServerError(ctx, "Login failed. Please try again.")
		return
	}

	token, err := middleware.GenerateToken(c.Secret, *res.User)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to issue token")
		return
	}

	redacted := res.User.Redacted()
	utils.Success(ctx, gin.H{
		"success": true,
		"message": res.Message,
		"token":   token,
		"user":    redacted,
	})
}

// Logout clears the durable session.
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.Session.Clear(); err != nil {
		utils.InternalServerError(ctx, "Logout failed")
		return
	}
	utils.Success(ctx, models.OK("Logged out"))
}

// CurrentSession returns the logged-in user, or a null user when nobody is
// logged in on this installation.
func (c *AuthController) CurrentSession(ctx *gin.Context) {
	user := c.Session.Current()
	if user == nil {
		utils.Success(ctx, gin.H{"user": nil})
		return
	}
	utils.Success(ctx, gin.H{"user": user.Redacted()})
}
