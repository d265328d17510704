package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchlistItem marks a movie a user intends to watch. Title and
// poster are denormalized so listing the watchlist needs no join.
type WatchlistItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     primitive.ObjectID `bson:"user" json:"user_id"`
	MovieID    int                `bson:"movie_id" json:"movieId"`
	Title      string             `bson:"title" json:"title"`
	PosterPath string             `bson:"poster_path" json:"poster_path"`
	AddedAt    time.Time          `bson:"added_at" json:"added_at"`
}
