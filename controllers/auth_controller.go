package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error)
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (*models.User, error)
}

type AuthController struct {
	authService AuthService
}

func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrMessage(err)})
		return
	}

	token, user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrMessage(err)})
		return
	}

	token, user, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	user, err := ac.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
