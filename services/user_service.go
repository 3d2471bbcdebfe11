package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
	"github.com/sumaiyaamin/chill-gamer-server/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

// RegisterResult reports the outcome of a registration attempt. Registering
// an email that already exists is a success-shaped no-op, not an error.
type RegisterResult struct {
	AlreadyExists bool
	InsertedID    primitive.ObjectID
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterUserRequest) (*RegisterResult, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegisterResult{AlreadyExists: true}, nil
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now(),
		Reviews:   []primitive.ObjectID{},
		Watchlist: []string{},
		Extra:     extraProfileFields(req.Extra),
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		// lost a registration race; the other insert won
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			return &RegisterResult{AlreadyExists: true}, nil
		}
		return nil, err
	}
	return &RegisterResult{InsertedID: id}, nil
}

func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

// extraProfileFields filters client-supplied profile fields down to the set
// a user may actually carry, dropping the protected keys.
func extraProfileFields(fields map[string]interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	extra := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		extra[k] = v
	}
	for _, field := range protectedProfileFields {
		delete(extra, field)
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

// protectedProfileFields cannot be patched through the profile endpoint: the
// embedded arrays belong to the review/watchlist services, and identity and
// creation time are immutable.
var protectedProfileFields = []string{"_id", "email", "createdAt", "reviews", "watchlist"}

func (s *UserService) UpdateProfile(ctx context.Context, email string, patch map[string]interface{}) error {
	for _, field := range protectedProfileFields {
		delete(patch, field)
	}
	if len(patch) == 0 {
		return apperrors.Validation("No updatable fields in request")
	}

	matched, err := s.users.ApplyProfilePatch(ctx, email, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// The mirror methods below keep users.reviews and users.watchlist aligned
// with the authoritative collections. Failures are logged and swallowed so
// the primary review/watchlist write is never rolled back; the arrays may
// diverge until the next successful mirror.

func (s *UserService) AttachReview(ctx context.Context, email string, reviewID primitive.ObjectID) {
	if err := s.users.PushReview(ctx, email, reviewID); err != nil {
		log.Printf("Failed to attach review %s to user %s: %v", reviewID.Hex(), email, err)
	}
}

func (s *UserService) DetachReview(ctx context.Context, email string, reviewID primitive.ObjectID) {
	if err := s.users.PullReview(ctx, email, reviewID); err != nil {
		log.Printf("Failed to detach review %s from user %s: %v", reviewID.Hex(), email, err)
	}
}

func (s *UserService) AttachWatchlistEntry(ctx context.Context, email, reviewID string) {
	if err := s.users.PushWatchlist(ctx, email, reviewID); err != nil {
		log.Printf("Failed to attach watchlist entry %s to user %s: %v", reviewID, email, err)
	}
}

func (s *UserService) DetachWatchlistEntry(ctx context.Context, email, reviewID string) {
	if err := s.users.PullWatchlist(ctx, email, reviewID); err != nil {
		log.Printf("Failed to detach watchlist entry %s from user %s: %v", reviewID, email, err)
	}
}
