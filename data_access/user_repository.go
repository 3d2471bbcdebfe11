package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
	"github.com/sumaiyaamin/chill-gamer-server/models"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert persists a new user. A duplicate-key rejection from the unique
// email index surfaces as a ConflictError so a registration race still
// resolves to the idempotent already-exists outcome.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.Conflict("User already exists")
		}
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// ApplyProfilePatch merges the given fields into the user document and
// reports how many documents matched. Callers are responsible for keeping
// protected fields out of the patch.
func (r *UserRepository) ApplyProfilePatch(ctx context.Context, email string, patch map[string]interface{}) (int64, error) {
	set := bson.M{}
	for k, v := range patch {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *UserRepository) PushReview(ctx context.Context, email string, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"reviews": reviewID}},
	)
	return err
}

func (r *UserRepository) PullReview(ctx context.Context, email string, reviewID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"reviews": reviewID}},
	)
	return err
}

func (r *UserRepository) PushWatchlist(ctx context.Context, email string, reviewID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"watchlist": reviewID}},
	)
	return err
}

func (r *UserRepository) PullWatchlist(ctx context.Context, email string, reviewID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"watchlist": reviewID}},
	)
	return err
}
