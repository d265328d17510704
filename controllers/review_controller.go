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

type ReviewService interface {
	CreateOrUpdate(ctx context.Context, userID primitive.ObjectID, tmdbID int, rating float64, content string) (*models.ReviewDetail, error)
	Update(ctx context.Context, reviewID, userID primitive.ObjectID, rating float64, content string) (*models.ReviewDetail, error)
	Delete(ctx context.Context, reviewID, userID primitive.ObjectID) error
	Like(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error)
	Dislike(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error)
	ListByMovie(ctx context.Context, tmdbID, page, limit int) ([]models.ReviewDetail, int64, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewDetail, error)
}

type ReviewController struct {
	reviewService ReviewService
}

func NewReviewController(reviewService ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Create handles POST /reviews. A second create for the same movie by
// the same user amends the existing review.
func (rc *ReviewController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrMessage(err)})
		return
	}

	review, err := rc.reviewService.CreateOrUpdate(c.Request.Context(), userID, req.MovieID, req.Rating, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// List handles GET /reviews?movieId=&page=&limit=.
func (rc *ReviewController) List(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Query("movieId"))
	if err != nil || movieID <= 0 {
		respondErr(c, errs.BadRequest("a valid movieId query parameter is required"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reviews, total, err := rc.reviewService.ListByMovie(c.Request.Context(), movieID, page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": len(reviews),
		"total":   total,
		"reviews": reviews,
	})
}

// ListMine handles GET /reviews/user.
func (rc *ReviewController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return
	}

	reviews, err := rc.reviewService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": len(reviews),
		"total":   len(reviews),
		"reviews": reviews,
	})
}

func (rc *ReviewController) Update(c *gin.Context) {
	userID, reviewID, ok := rc.ownedReviewArgs(c)
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrMessage(err)})
		return
	}

	review, err := rc.reviewService.Update(c.Request.Context(), reviewID, userID, req.Rating, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) Delete(c *gin.Context) {
	userID, reviewID, ok := rc.ownedReviewArgs(c)
	if !ok {
		return
	}

	if err := rc.reviewService.Delete(c.Request.Context(), reviewID, userID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (rc *ReviewController) Like(c *gin.Context) {
	userID, reviewID, ok := rc.ownedReviewArgs(c)
	if !ok {
		return
	}

	review, err := rc.reviewService.Like(c.Request.Context(), reviewID, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) Dislike(c *gin.Context) {
	userID, reviewID, ok := rc.ownedReviewArgs(c)
	if !ok {
		return
	}

	review, err := rc.reviewService.Dislike(c.Request.Context(), reviewID, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) ownedReviewArgs(c *gin.Context) (userID, reviewID primitive.ObjectID, ok bool) {
	userID, ok = currentUserID(c)
	if !ok {
		respondErr(c, errs.Unauthorized("not authenticated"))
		return userID, reviewID, false
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondErr(c, errs.BadRequest("invalid review id"))
		return userID, reviewID, false
	}
	return userID, reviewID, true
}
