package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review holds a single user's opinion of a movie. The compound unique
// index on (user, movie) guarantees at most one per pair.
type Review struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID   `bson:"user" json:"user_id"`
	MovieID   primitive.ObjectID   `bson:"movie" json:"movie_id"`
	Rating    float64              `bson:"rating" json:"rating"`
	Content   string               `bson:"content" json:"content"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Dislikes  []primitive.ObjectID `bson:"dislikes" json:"dislikes"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}

// ReviewDetail is a review joined with its reviewer's public identity
// and, in listings, the movie's display fields.
type ReviewDetail struct {
	Review `bson:",inline"`
	User   PublicUser    `bson:"user_info" json:"user"`
	Movie  *MovieSummary `bson:"movie_info,omitempty" json:"movie,omitempty"`
}
