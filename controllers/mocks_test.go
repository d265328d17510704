package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, *models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(1).(*models.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(1).(*models.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (*models.User, error) {
	args := m.Called(ctx, userID, avatarURL)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) GetMovie(ctx context.Context, tmdbID int) (*models.Movie, error) {
	args := m.Called(ctx, tmdbID)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, query string, page int, withGenres string) (*models.TMDBSearchResponse, error) {
	args := m.Called(ctx, query, page, withGenres)
	resp, _ := args.Get(0).(*models.TMDBSearchResponse)
	return resp, args.Error(1)
}

func (m *MockMovieService) Similar(ctx context.Context, tmdbID int) (*models.TMDBSearchResponse, error) {
	args := m.Called(ctx, tmdbID)
	resp, _ := args.Get(0).(*models.TMDBSearchResponse)
	return resp, args.Error(1)
}

func (m *MockMovieService) Trending(ctx context.Context) (*models.TMDBSearchResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.TMDBSearchResponse)
	return resp, args.Error(1)
}

func (m *MockMovieService) ListCached(ctx context.Context, page, limit int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, limit)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Get(1).(int64), args.Error(2)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateOrUpdate(ctx context.Context, userID primitive.ObjectID, tmdbID int, rating float64, content string) (*models.ReviewDetail, error) {
	args := m.Called(ctx, userID, tmdbID, rating, content)
	review, _ := args.Get(0).(*models.ReviewDetail)
	return review, args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, reviewID, userID primitive.ObjectID, rating float64, content string) (*models.ReviewDetail, error) {
	args := m.Called(ctx, reviewID, userID, rating, content)
	review, _ := args.Get(0).(*models.ReviewDetail)
	return review, args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, reviewID, userID primitive.ObjectID) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *MockReviewService) Like(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error) {
	args := m.Called(ctx, reviewID, userID)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *MockReviewService) Dislike(ctx context.Context, reviewID, userID primitive.ObjectID) (*models.Review, error) {
	args := m.Called(ctx, reviewID, userID)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *MockReviewService) ListByMovie(ctx context.Context, tmdbID, page, limit int) ([]models.ReviewDetail, int64, error) {
	args := m.Called(ctx, tmdbID, page, limit)
	reviews, _ := args.Get(0).([]models.ReviewDetail)
	return reviews, args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]models.ReviewDetail)
	return reviews, args.Error(1)
}

type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) Add(ctx context.Context, userID primitive.ObjectID, movieID int, title, posterPath string) (*models.WatchlistItem, error) {
	args := m.Called(ctx, userID, movieID, title, posterPath)
	item, _ := args.Get(0).(*models.WatchlistItem)
	return item, args.Error(1)
}

func (m *MockWatchlistService) Remove(ctx context.Context, userID primitive.ObjectID, movieID int) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockWatchlistService) List(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.WatchlistItem)
	return items, args.Error(1)
}
