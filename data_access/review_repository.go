package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *MongoDB) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection("reviews")}
}

func (r *ReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"user": userID, "movie": movieID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Insert writes a new review. A lost race on the (user, movie) index
// comes back as ErrReviewExists so the caller can fall back to update.
func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrReviewExists
		}
		return err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	review.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": review.ID},
		bson.M{"$set": bson.M{
			"rating":     review.Rating,
			"content":    review.Content,
			"updated_at": review.UpdatedAt,
		}},
	)
	return err
}

func (r *ReviewRepository) UpdateReactions(ctx context.Context, id primitive.ObjectID, likes, dislikes []primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"likes": likes, "dislikes": dislikes}},
	)
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrReviewNotFound
	}
	return nil
}

// ListByMovie returns a page of reviews for a movie, newest first,
// with the reviewer and movie display fields joined in.
func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID primitive.ObjectID, page, limit int) ([]models.ReviewDetail, error) {
	return r.list(ctx, bson.M{"movie": movieID}, (page-1)*limit, limit)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ReviewDetail, error) {
	return r.list(ctx, bson.M{"user": userID}, 0, 0)
}

func (r *ReviewRepository) CountByMovie(ctx context.Context, movieID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"movie": movieID})
}

func (r *ReviewRepository) list(ctx context.Context, match bson.M, skip, limit int) ([]models.ReviewDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: int64(skip)}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(limit)}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "_id",
			"as":           "user_info",
		}}},
		bson.D{{Key: "$unwind", Value: "$user_info"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "movies",
			"localField":   "movie",
			"foreignField": "_id",
			"as":           "movie_info",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$movie_info",
			"preserveNullAndEmptyArrays": true,
		}}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.ReviewDetail
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
