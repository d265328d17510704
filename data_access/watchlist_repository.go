package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

type WatchlistRepository struct {
	collection *mongo.Collection
}

func NewWatchlistRepository(db *MongoDB) *WatchlistRepository {
	return &WatchlistRepository{collection: db.Collection("watchlist")}
}

// Insert adds an entry. Duplicate (user, movie) pairs are rejected by
// the compound index and reported as ErrAlreadyInWatchlist.
func (r *WatchlistRepository) Insert(ctx context.Context, item *models.WatchlistItem) error {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyInWatchlist
		}
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *WatchlistRepository) Delete(ctx context.Context, userID primitive.ObjectID, movieID int) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user": userID, "movie_id": movieID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrWatchlistNotFound
	}
	return nil
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistItem, error) {
	opts := options.Find().SetSort(bson.M{"added_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.WatchlistItem{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
