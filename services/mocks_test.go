package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatarURL string) (*models.User, error) {
	args := m.Called(ctx, id, avatarURL)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error) {
	args := m.Called(ctx, tmdbID)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepository) Insert(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) UpdateVolatile(ctx context.Context, tmdbID int, fresh *models.Movie) (*models.Movie, error) {
	args := m.Called(ctx, tmdbID, fresh)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepository) PushReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, movieID, reviewID)
	return args.Error(0)
}

func (m *MockMovieRepository) PullReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, movieID, reviewID)
	return args.Error(0)
}

func (m *MockMovieRepository) List(ctx context.Context, page, limit int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, limit)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Get(1).(int64), args.Error(2)
}

type MockMetadataProvider struct {
	mock.Mock
}

func (m *MockMetadataProvider) FetchMovie(ctx context.Context, tmdbID int) (*models.TMDBMovieDetail, error) {
	args := m.Called(ctx, tmdbID)
	detail, _ := args.Get(0).(*models.TMDBMovieDetail)
	return detail, args.Error(1)
}

func (m *MockMetadataProvider) Search(ctx context.Context, query string, page int, withGenres string) (*models.TMDBSearchResponse, error) {
	args := m.Called(ctx, query, page, withGenres)
	resp, _ := args.Get(0).(*models.TMDBSearchResponse)
	return resp, args.Error(1)
}

func (m *MockMetadataProvider) Similar(ctx context.Context, tmdbID int) (*models.TMDBSearchResponse, error) {
	args := m.Called(ctx, tmdbID)
	resp, _ := args.Get(0).(*models.TMDBSearchResponse)
	return resp, args.Error(1)
}

func (m *MockMetadataProvider) Trending(ctx context.Context) (*models.TMDBSearchResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.TMDBSearchResponse)
	return resp, args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *MockReviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Review, error) {
	args := m.Called(ctx, userID, movieID)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) UpdateReactions(ctx context.Context, id primitive.ObjectID, likes, dislikes []primitive.ObjectID) error {
	args := m.Called(ctx, id, likes, dislikes)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByMovie(ctx context.Context, movieID primitive.ObjectID, page, limit int) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, movieID, page, limit)
	reviews, _ := args.Get(0).([]models.ReviewDetail)
	return reviews, args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]models.ReviewDetail)
	return reviews, args.Error(1)
}

func (m *MockReviewRepository) CountByMovie(ctx context.Context, movieID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMovieCatalog struct {
	mock.Mock
}

func (m *MockMovieCatalog) ResolveMovie(ctx context.Context, tmdbID int) (*models.Movie, error) {
	args := m.Called(ctx, tmdbID)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieCatalog) LookupMovie(ctx context.Context, tmdbID int) (*models.Movie, error) {
	args := m.Called(ctx, tmdbID)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieCatalog) AttachReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, movieID, reviewID)
	return args.Error(0)
}

func (m *MockMovieCatalog) DetachReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, movieID, reviewID)
	return args.Error(0)
}

type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Insert(ctx context.Context, item *models.WatchlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, userID primitive.ObjectID, movieID int) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.WatchlistItem)
	return items, args.Error(1)
}
