package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

type MovieService interface {
	GetMovie(ctx context.Context, tmdbID int) (*models.Movie, error)
	Search(ctx context.Context, query string, page int, withGenres string) (*models.TMDBSearchResponse, error)
	Similar(ctx context.Context, tmdbID int) (*models.TMDBSearchResponse, error)
	Trending(ctx context.Context) (*models.TMDBSearchResponse, error)
	ListCached(ctx context.Context, page, limit int) ([]models.Movie, int64, error)
}

type MovieController struct {
	movieService MovieService
}

func NewMovieController(movieService MovieService) *MovieController {
	return &MovieController{movieService: movieService}
}

func (mc *MovieController) Search(c *gin.Context) {
	query := c.Query("query")
	withGenres := c.Query("with_genres")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	resp, err := mc.movieService.Search(c.Request.Context(), query, page, withGenres)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (mc *MovieController) Trending(c *gin.Context) {
	resp, err := mc.movieService.Trending(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List returns the locally cached movies, newest first.
func (mc *MovieController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	movies, total, err := mc.movieService.ListCached(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	c.JSON(http.StatusOK, gin.H{
		"results": len(movies),
		"total":   total,
		"movies":  movies,
	})
}

func (mc *MovieController) GetByID(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("id"))
	if err != nil || tmdbID <= 0 {
		respondErr(c, errs.BadRequest("invalid movie id"))
		return
	}

	movie, err := mc.movieService.GetMovie(c.Request.Context(), tmdbID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (mc *MovieController) Similar(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("id"))
	if err != nil || tmdbID <= 0 {
		respondErr(c, errs.BadRequest("invalid movie id"))
		return
	}

	resp, err := mc.movieService.Similar(c.Request.Context(), tmdbID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": resp.Results})
}
