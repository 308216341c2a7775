package controllers

import (
	"net/http"

	apperrors "marketplace/errors"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

// Register creates an account and hands the verification email body to the
// mail layer.
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, _, svcErr := ac.Users.Register(c.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

// VerifyEmail flips the account owning the token to verified.
func (ac *AuthController) VerifyEmail(c *gin.Context) {
	token := c.Query("token")

	if svcErr := ac.Users.VerifyEmail(c.Request.Context(), token); svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": true})
}
