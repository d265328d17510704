package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

type WatchlistService interface {
	Add(ctx context.Context, userID primitive.ObjectID, movieID int, title, posterPath string) (*models.WatchlistItem, error)
	Remove(ctx context.Context, userID primitive.ObjectID, movieID int) error
	List(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistItem, error)
}

type WatchlistController struct {
	watchlistService WatchlistService
}

func NewWatchlistController(watchlistService WatchlistService) *WatchlistController {
	return &WatchlistController{watchlistService: watchlistService}
}

func (wc *WatchlistController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	items, err := wc.watchlistService.List(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (wc *WatchlistController) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	var req models.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrMessage(err)})
		return
	}

	item, err := wc.watchlistService.Add(c.Request.Context(), userID, req.MovieID, req.Title, req.PosterPath)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (wc *WatchlistController) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	movieID, err := strconv.Atoi(c.Param("movieId"))
	if err != nil || movieID <= 0 {
		respondErr(c, errs.BadRequest("invalid movie id"))
		return
	}

	if err := wc.watchlistService.Remove(c.Request.Context(), userID, movieID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie removed from watchlist"})
}
