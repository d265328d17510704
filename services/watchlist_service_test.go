package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

func TestWatchlistAdd(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("add resolves the movie and inserts", func(t *testing.T) {
		watchlist := new(MockWatchlistRepository)
		movies := new(MockMovieCatalog)
		svc := NewWatchlistService(watchlist, movies)

		movies.On("ResolveMovie", ctx, 27205).Return(fixtureMovie(27205), nil)
		watchlist.On("Insert", ctx, mock.AnythingOfType("*models.WatchlistItem")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.WatchlistItem).ID = primitive.NewObjectID()
		}).Return(nil)

		item, err := svc.Add(ctx, userID, 27205, "Inception", "/poster.jpg")
		require.NoError(t, err)
		assert.Equal(t, 27205, item.MovieID)
		assert.Equal(t, "Inception", item.Title)
		assert.Equal(t, "/poster.jpg", item.PosterPath)
		assert.False(t, item.AddedAt.IsZero())
		watchlist.AssertExpectations(t)
	})

	t.Run("duplicate add is rejected, not merged", func(t *testing.T) {
		watchlist := new(MockWatchlistRepository)
		movies := new(MockMovieCatalog)
		svc := NewWatchlistService(watchlist, movies)

		movies.On("ResolveMovie", ctx, 27205).Return(fixtureMovie(27205), nil)
		watchlist.On("Insert", ctx, mock.AnythingOfType("*models.WatchlistItem")).Return(errs.ErrAlreadyInWatchlist)

		_, err := svc.Add(ctx, userID, 27205, "Inception", "")
		assert.Equal(t, errs.ErrAlreadyInWatchlist, err)
	})

	t.Run("provider failure on first reference writes nothing", func(t *testing.T) {
		watchlist := new(MockWatchlistRepository)
		movies := new(MockMovieCatalog)
		svc := NewWatchlistService(watchlist, movies)

		upstream := errs.Upstream("invalid TMDB API key")
		movies.On("ResolveMovie", ctx, 27205).Return(nil, upstream)

		_, err := svc.Add(ctx, userID, 27205, "Inception", "")
		assert.Equal(t, upstream, err)
		watchlist.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestWatchlistRemove(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("remove deletes the entry", func(t *testing.T) {
		watchlist := new(MockWatchlistRepository)
		svc := NewWatchlistService(watchlist, new(MockMovieCatalog))

		watchlist.On("Delete", ctx, userID, 27205).Return(nil)
		require.NoError(t, svc.Remove(ctx, userID, 27205))
	})

	t.Run("absent entry is not found", func(t *testing.T) {
		watchlist := new(MockWatchlistRepository)
		svc := NewWatchlistService(watchlist, new(MockMovieCatalog))

		watchlist.On("Delete", ctx, userID, 27205).Return(errs.ErrWatchlistNotFound)
		err := svc.Remove(ctx, userID, 27205)
		assert.Equal(t, errs.ErrWatchlistNotFound, err)
	})
}

func TestWatchlistList(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	watchlist := new(MockWatchlistRepository)
	svc := NewWatchlistService(watchlist, new(MockMovieCatalog))

	items := []models.WatchlistItem{
		{MovieID: 27205, Title: "Inception"},
		{MovieID: 550, Title: "Fight Club"},
	}
	watchlist.On("ListByUser", ctx, userID).Return(items, nil)

	out, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, items, out)
}
