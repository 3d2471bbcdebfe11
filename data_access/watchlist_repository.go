package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
	"github.com/sumaiyaamin/chill-gamer-server/models"
)

type WatchlistRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewWatchlistRepository(db *MongoDB) *WatchlistRepository {
	return &WatchlistRepository{
		db:         db,
		collection: db.Collection("watchlist"),
	}
}

// Insert persists a watchlist entry. A duplicate-key rejection from the
// unique (userEmail, reviewId) index surfaces as a ConflictError, which
// closes the race between the service's existence check and the write.
func (r *WatchlistRepository) Insert(ctx context.Context, entry *models.WatchlistEntry) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.Conflict("Already in watchlist")
		}
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *WatchlistRepository) FindEntry(ctx context.Context, reviewID, userEmail string) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.collection.FindOne(ctx, bson.M{
		"reviewId":  reviewID,
		"userEmail": userEmail,
	}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WatchlistRepository) FindByUser(ctx context.Context, email string) ([]models.WatchlistEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.WatchlistEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WatchlistRepository) DeleteEntry(ctx context.Context, reviewID, userEmail string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{
		"reviewId":  reviewID,
		"userEmail": userEmail,
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByReview removes every entry referencing the review. Used by the
// review delete cascade.
func (r *WatchlistRepository) DeleteByReview(ctx context.Context, reviewID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"reviewId": reviewID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
