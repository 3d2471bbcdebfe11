package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sumaiyaamin/chill-gamer-server/models"
)

// Store interfaces implemented by the data_access repositories. Lookup
// methods return (nil, nil) when no document matches.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	ApplyProfilePatch(ctx context.Context, email string, patch map[string]interface{}) (int64, error)
	PushReview(ctx context.Context, email string, reviewID primitive.ObjectID) error
	PullReview(ctx context.Context, email string, reviewID primitive.ObjectID) error
	PushWatchlist(ctx context.Context, email string, reviewID string) error
	PullWatchlist(ctx context.Context, email string, reviewID string) error
}

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	FindTopRated(ctx context.Context, limit int64) ([]models.Review, error)
	FindByOwner(ctx context.Context, email string) ([]models.Review, error)
}

type WatchlistStore interface {
	Insert(ctx context.Context, entry *models.WatchlistEntry) (primitive.ObjectID, error)
	FindEntry(ctx context.Context, reviewID, userEmail string) (*models.WatchlistEntry, error)
	FindByUser(ctx context.Context, email string) ([]models.WatchlistEntry, error)
	DeleteEntry(ctx context.Context, reviewID, userEmail string) (int64, error)
	DeleteByReview(ctx context.Context, reviewID string) (int64, error)
}

// UserRegistry mirrors review/watchlist writes into the owning user's
// embedded arrays. The mirrors are best-effort: implementations log failures
// and never propagate them, so the primary write always stands.
type UserRegistry interface {
	AttachReview(ctx context.Context, email string, reviewID primitive.ObjectID)
	DetachReview(ctx context.Context, email string, reviewID primitive.ObjectID)
	AttachWatchlistEntry(ctx context.Context, email, reviewID string)
	DetachWatchlistEntry(ctx context.Context, email, reviewID string)
}
