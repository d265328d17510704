package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

const (
	minRating         = 0.5
	maxRating         = 5.0
	maxContentLength  = 1000
	defaultPageLimit  = 10
)

// ReviewRepository is the slice of the review store the service needs.
type ReviewRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	UpdateReactions(ctx context.Context, id primitive.ObjectID, likes, dislikes []primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByMovie(ctx context.Context, movieID primitive.ObjectID, page, limit int) ([]models.ReviewDetail, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewDetail, error)
	CountByMovie(ctx context.Context, movieID primitive.ObjectID) (int64, error)
}

// MovieCatalog is the slice of the movie service reviews depend on.
type MovieCatalog interface {
	ResolveMovie(ctx context.Context, tmdbID int) (*models.Movie, error)
	LookupMovie(ctx context.Context, tmdbID int) (*models.Movie, error)
	AttachReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error
	DetachReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error
}

// UserReader resolves reviewer identities for responses.
type UserReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// ReviewService enforces the one-review-per-(user, movie) invariant:
// a create against an existing pair becomes an update, and a lost
// insert race on the compound index is converted the same way.
type ReviewService struct {
	reviews ReviewRepository
	movies  MovieCatalog
	users   UserReader
}

func NewReviewService(reviews ReviewRepository, movies MovieCatalog, users UserReader) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		movies:  movies,
		users:   users,
	}
}

func validateReviewInput(rating float64, content string) error {
	if rating < minRating || rating > maxRating {
		return errs.BadRequest("rating must be between 0.5 and 5")
	}
	if len([]rune(content)) > maxContentLength {
		return errs.BadRequest("review content cannot exceed 1000 characters")
	}
	return nil
}

// CreateOrUpdate records the user's opinion of a movie, creating the
// local movie record if this is its first reference.
func (s *ReviewService) CreateOrUpdate(ctx context.Context, userID primitive.ObjectID, tmdbID int, rating float64, content string) (*models.ReviewDetail, error) {
	if err := validateReviewInput(rating, content); err != nil {
		return nil, err
	}

	movie, err := s.movies.ResolveMovie(ctx, tmdbID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviews.FindByUserAndMovie(ctx, userID, movie.ID)
	if err != nil {
		return nil, err
	}

	if review != nil {
		review.Rating = rating
		review.Content = content
		if err := s.reviews.Update(ctx, review); err != nil {
			return nil, err
		}
		return s.detail(ctx, review, movie)
	}

	now := time.Now()
	review = &models.Review{
		UserID:    userID,
		MovieID:   movie.ID,
		Rating:    rating,
		Content:   content,
		Likes:     []primitive.ObjectID{},
		Dislikes:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		if err == errs.ErrReviewExists {
			// Lost the insert race; amend the winner instead.
			existing, ferr := s.reviews.FindByUserAndMovie(ctx, userID, movie.ID)
			if ferr != nil {
				return nil, ferr
			}
			if existing == nil {
				return nil, err
			}
			existing.Rating = rating
			existing.Content = content
			if uerr := s.reviews.Update(ctx, existing); uerr != nil {
				return nil, uerr
			}
			return s.detail(ctx, existing, movie)
		}
		return nil, err
	}
	if err := s.movies.AttachReview(ctx, movie.ID, review.ID); err != nil {
		return nil, err
	}
	return s.detail(ctx, review, movie)
}

// Update amends an owned review. A foreign or missing review is the
// same not-found error; existence is never leaked.
func (s *ReviewService) Update(ctx context.Context, reviewID, userID primitive.ObjectID, rating float64, content string) (*models.ReviewDetail, error) {
	if err := validateReviewInput(rating, content); err != nil {
		return nil, err
	}

	review, err := s.ownedReview(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	review.Rating = rating
	review.Content = content
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.detail(ctx, review, nil)
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, userID primitive.ObjectID) error {
	review, err := s.ownedReview(ctx, reviewID, userID)
	if err != nil {
		return err
	}
	if err := s.movies.DetachReview(ctx, review.MovieID, review.ID); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, review.ID)
}

// Like marks a like, dropping any prior dislike by the same user.
// Re-marking is a no-op.
func (s *ReviewService) Like(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error) {
	return s.react(ctx, reviewID, userID, true)
}

// Dislike mirrors Like.
func (s *ReviewService) Dislike(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error) {
	return s.react(ctx, reviewID, userID, false)
}

func (s *ReviewService) react(ctx context.Context, reviewID, userID primitive.ObjectID, like bool) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errs.ErrReviewNotFound
	}

	if like {
		review.Dislikes = removeID(review.Dislikes, userID)
		review.Likes = appendIDOnce(review.Likes, userID)
	} else {
		review.Likes = removeID(review.Likes, userID)
		review.Dislikes = appendIDOnce(review.Dislikes, userID)
	}

	if err := s.reviews.UpdateReactions(ctx, review.ID, review.Likes, review.Dislikes); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByMovie returns a page of a movie's reviews, newest first. An
// uncached movie simply has no reviews yet.
func (s *ReviewService) ListByMovie(ctx context.Context, tmdbID, page, limit int) ([]models.ReviewDetail, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	movie, err := s.movies.LookupMovie(ctx, tmdbID)
	if err != nil {
		return nil, 0, err
	}
	if movie == nil {
		return []models.ReviewDetail{}, 0, nil
	}

	reviews, err := s.reviews.ListByMovie(ctx, movie.ID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reviews.CountByMovie(ctx, movie.ID)
	if err != nil {
		return nil, 0, err
	}
	if reviews == nil {
		reviews = []models.ReviewDetail{}
	}
	return reviews, total, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewDetail, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewDetail{}
	}
	return reviews, nil
}

func (s *ReviewService) ownedReview(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.UserID != userID {
		return nil, errs.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) detail(ctx context.Context, review *models.Review, movie *models.Movie) (*models.ReviewDetail, error) {
	user, err := s.users.FindByID(ctx, review.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}

	out := &models.ReviewDetail{
		Review: *review,
		User:   user.Public(),
	}
	if movie != nil {
		out.Movie = &models.MovieSummary{
			TmdbID:     movie.TmdbID,
			Title:      movie.Title,
			PosterPath: movie.PosterPath,
		}
	}
	return out, nil
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func appendIDOnce(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
