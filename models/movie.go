package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is the locally cached copy of a TMDB record. TmdbID is unique
// and immutable after creation; the metric fields (budget, revenue,
// runtime, credits...) are refreshed on every detail fetch.
type Movie struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	TmdbID       int                  `bson:"tmdb_id" json:"tmdb_id"`
	Title        string               `bson:"title" json:"title"`
	Overview     string               `bson:"overview" json:"overview"`
	PosterPath   string               `bson:"poster_path" json:"poster_path"`
	BackdropPath string               `bson:"backdrop_path" json:"backdrop_path"`
	ReleaseDate  string               `bson:"release_date" json:"release_date"`
	VoteAverage  float64              `bson:"vote_average" json:"vote_average"`
	Genres       []string             `bson:"genres" json:"genres"`
	Budget       int64                `bson:"budget" json:"budget"`
	Revenue      int64                `bson:"revenue" json:"revenue"`
	Runtime      int                  `bson:"runtime" json:"runtime"`
	Tagline      string               `bson:"tagline" json:"tagline"`
	Status       string               `bson:"status" json:"status"`
	ImdbID       string               `bson:"imdb_id" json:"imdb_id"`
	Credits      Credits              `bson:"credits" json:"credits"`
	Reviews      []primitive.ObjectID `bson:"reviews" json:"reviews"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updated_at"`
}

type Credits struct {
	Cast []CastMember `bson:"cast" json:"cast"`
	Crew []CrewMember `bson:"crew" json:"crew"`
}

type CastMember struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Character   string `bson:"character" json:"character"`
	ProfilePath string `bson:"profile_path" json:"profile_path"`
	Order       int    `bson:"order" json:"order"`
}

type CrewMember struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Job         string `bson:"job" json:"job"`
	Department  string `bson:"department" json:"department"`
	ProfilePath string `bson:"profile_path" json:"profile_path"`
}

// MovieSummary carries the display fields joined into review listings.
type MovieSummary struct {
	TmdbID     int    `bson:"tmdb_id" json:"tmdb_id"`
	Title      string `bson:"title" json:"title"`
	PosterPath string `bson:"poster_path" json:"poster_path"`
}
