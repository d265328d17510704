package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{collection: db.Collection("movies")}
}

func (r *MovieRepository) FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"tmdb_id": tmdbID}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Insert writes a freshly seeded record. A lost race on the tmdb_id
// index comes back as ErrMovieExists so the caller can re-read.
func (r *MovieRepository) Insert(ctx context.Context, movie *models.Movie) error {
	res, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrMovieExists
		}
		return err
	}
	movie.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateVolatile refreshes the mutable metric fields of an existing
// record. Identifying fields are never touched.
func (r *MovieRepository) UpdateVolatile(ctx context.Context, tmdbID int, fresh *models.Movie) (*models.Movie, error) {
	update := bson.M{"$set": bson.M{
		"overview":      fresh.Overview,
		"poster_path":   fresh.PosterPath,
		"backdrop_path": fresh.BackdropPath,
		"vote_average":  fresh.VoteAverage,
		"genres":        fresh.Genres,
		"budget":        fresh.Budget,
		"revenue":       fresh.Revenue,
		"runtime":       fresh.Runtime,
		"tagline":       fresh.Tagline,
		"status":        fresh.Status,
		"imdb_id":       fresh.ImdbID,
		"credits":       fresh.Credits,
		"updated_at":    time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"tmdb_id": tmdbID}, update, opts).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, errs.ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) PushReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": movieID},
		bson.M{"$addToSet": bson.M{"reviews": reviewID}},
	)
	return err
}

func (r *MovieRepository) PullReview(ctx context.Context, movieID, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": movieID},
		bson.M{"$pull": bson.M{"reviews": reviewID}},
	)
	return err
}

func (r *MovieRepository) List(ctx context.Context, page, limit int) ([]models.Movie, int64, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	var movies []models.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}
