package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

// UserController covers profile mutations. It shares the AuthService
// since the user store lives behind it.
type UserController struct {
	authService AuthService
}

func NewUserController(authService AuthService) *UserController {
	return &UserController{authService: authService}
}

func (uc *UserController) UpdateAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	var req models.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrMessage(err)})
		return
	}

	user, err := uc.authService.UpdateAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar updated successfully",
		"user":    user,
	})
}
