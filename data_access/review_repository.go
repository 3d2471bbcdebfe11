package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sumaiyaamin/chill-gamer-server/models"
)

type ReviewRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewReviewRepository(db *MongoDB) *ReviewRepository {
	return &ReviewRepository{
		db:         db,
		collection: db.Collection("reviews"),
	}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
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

// UpdateFields applies a $set of the given fields and reports the matched
// count.
func (r *ReviewRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findReviews(ctx, bson.M{}, opts)
}

// FindTopRated orders by rating descending with creation time breaking ties.
func (r *ReviewRepository) FindTopRated(ctx context.Context, limit int64) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "rating", Value: -1},
			{Key: "createdAt", Value: -1},
		}).
		SetLimit(limit)
	return r.findReviews(ctx, bson.M{}, opts)
}

func (r *ReviewRepository) FindByOwner(ctx context.Context, email string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findReviews(ctx, bson.M{"userEmail": email}, opts)
}

func (r *ReviewRepository) findReviews(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
