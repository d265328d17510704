package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/models"
)

// WatchlistRepository is the slice of the watchlist store the service
// needs.
type WatchlistRepository interface {
	Insert(ctx context.Context, item *models.WatchlistItem) error
	Delete(ctx context.Context, userID primitive.ObjectID, movieID int) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistItem, error)
}

// MovieResolver guarantees a local movie record exists before an entry
// references it.
type MovieResolver interface {
	ResolveMovie(ctx context.Context, tmdbID int) (*models.Movie, error)
}

type WatchlistService struct {
	watchlist WatchlistRepository
	movies    MovieResolver
}

func NewWatchlistService(watchlist WatchlistRepository, movies MovieResolver) *WatchlistService {
	return &WatchlistService{
		watchlist: watchlist,
		movies:    movies,
	}
}

// Add inserts an entry for the pair. A duplicate add is rejected with
// the typed duplicate error, never merged.
func (s *WatchlistService) Add(ctx context.Context, userID primitive.ObjectID, movieID int, title, posterPath string) (*models.WatchlistItem, error) {
	if _, err := s.movies.ResolveMovie(ctx, movieID); err != nil {
		return nil, err
	}

	item := &models.WatchlistItem{
		UserID:     userID,
		MovieID:    movieID,
		Title:      title,
		PosterPath: posterPath,
		AddedAt:    time.Now(),
	}
	if err := s.watchlist.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WatchlistService) Remove(ctx context.Context, userID primitive.ObjectID, movieID int) error {
	return s.watchlist.Delete(ctx, userID, movieID)
}

// List returns the user's entries, most recently added first.
func (s *WatchlistService) List(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistItem, error) {
	return s.watchlist.ListByUser(ctx, userID)
}
