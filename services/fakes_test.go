package services

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
	"github.com/sumaiyaamin/chill-gamer-server/models"
)

// --- Fakes ---

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if _, exists := f.users[user.Email]; exists {
		return primitive.NilObjectID, apperrors.Conflict("User already exists")
	}
	id := primitive.NewObjectID()
	user.ID = id
	f.users[user.Email] = user
	return id, nil
}

func (f *fakeUserStore) ApplyProfilePatch(_ context.Context, email string, patch map[string]interface{}) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	if user.Extra == nil {
		user.Extra = map[string]interface{}{}
	}
	for k, v := range patch {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				user.Name = s
			}
		case "photoURL":
			if s, ok := v.(string); ok {
				user.PhotoURL = s
			}
		default:
			user.Extra[k] = v
		}
	}
	return 1, nil
}

func (f *fakeUserStore) PushReview(_ context.Context, email string, reviewID primitive.ObjectID) error {
	if user, ok := f.users[email]; ok {
		user.Reviews = append(user.Reviews, reviewID)
	}
	return nil
}

func (f *fakeUserStore) PullReview(_ context.Context, email string, reviewID primitive.ObjectID) error {
	user, ok := f.users[email]
	if !ok {
		return nil
	}
	kept := user.Reviews[:0]
	for _, id := range user.Reviews {
		if id != reviewID {
			kept = append(kept, id)
		}
	}
	user.Reviews = kept
	return nil
}

func (f *fakeUserStore) PushWatchlist(_ context.Context, email string, reviewID string) error {
	if user, ok := f.users[email]; ok {
		user.Watchlist = append(user.Watchlist, reviewID)
	}
	return nil
}

func (f *fakeUserStore) PullWatchlist(_ context.Context, email string, reviewID string) error {
	user, ok := f.users[email]
	if !ok {
		return nil
	}
	kept := user.Watchlist[:0]
	for _, id := range user.Watchlist {
		if id != reviewID {
			kept = append(kept, id)
		}
	}
	user.Watchlist = kept
	return nil
}

// erroringUserStore fails every mirror write, standing in for an unavailable
// users collection.
type erroringUserStore struct {
	*fakeUserStore
}

func (e *erroringUserStore) PushReview(context.Context, string, primitive.ObjectID) error {
	return errors.New("users collection unavailable")
}

func (e *erroringUserStore) PullReview(context.Context, string, primitive.ObjectID) error {
	return errors.New("users collection unavailable")
}

func (e *erroringUserStore) PushWatchlist(context.Context, string, string) error {
	return errors.New("users collection unavailable")
}

func (e *erroringUserStore) PullWatchlist(context.Context, string, string) error {
	return errors.New("users collection unavailable")
}

type fakeReviewStore struct {
	reviews []models.Review
}

func (f *fakeReviewStore) Insert(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return review.ID, nil
}

func (f *fakeReviewStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	for _, review := range f.reviews {
		if review.ID == id {
			copied := review
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewStore) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	for i := range f.reviews {
		if f.reviews[i].ID != id {
			continue
		}
		r := &f.reviews[i]
		for k, v := range fields {
			switch k {
			case "title":
				r.Title = v.(string)
			case "image":
				r.Image = v.(string)
			case "genre":
				r.Genre = v.(string)
			case "platform":
				r.Platform = v.(string)
			case "rating":
				r.Rating = v.(float64)
			case "releaseYear":
				r.ReleaseYear = v.(int64)
			case "publisher":
				r.Publisher = v.(string)
			case "price":
				r.Price = v.(float64)
			case "description":
				r.Description = v.(string)
			case "review":
				r.Review = v.(string)
			}
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeReviewStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeReviewStore) FindAll(_ context.Context) ([]models.Review, error) {
	out := append([]models.Review(nil), f.reviews...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeReviewStore) FindTopRated(_ context.Context, limit int64) ([]models.Review, error) {
	out := append([]models.Review(nil), f.reviews...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReviewStore) FindByOwner(_ context.Context, email string) ([]models.Review, error) {
	var out []models.Review
	for _, review := range f.reviews {
		if review.UserEmail == email {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeWatchlistStore struct {
	entries []models.WatchlistEntry
}

func (f *fakeWatchlistStore) Insert(_ context.Context, entry *models.WatchlistEntry) (primitive.ObjectID, error) {
	for _, existing := range f.entries {
		if existing.ReviewID == entry.ReviewID && existing.UserEmail == entry.UserEmail {
			return primitive.NilObjectID, apperrors.Conflict("Already in watchlist")
		}
	}
	entry.ID = primitive.NewObjectID()
	f.entries = append(f.entries, *entry)
	return entry.ID, nil
}

func (f *fakeWatchlistStore) FindEntry(_ context.Context, reviewID, userEmail string) (*models.WatchlistEntry, error) {
	for _, entry := range f.entries {
		if entry.ReviewID == reviewID && entry.UserEmail == userEmail {
			copied := entry
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeWatchlistStore) FindByUser(_ context.Context, email string) ([]models.WatchlistEntry, error) {
	var out []models.WatchlistEntry
	for _, entry := range f.entries {
		if entry.UserEmail == email {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	return out, nil
}

func (f *fakeWatchlistStore) DeleteEntry(_ context.Context, reviewID, userEmail string) (int64, error) {
	for i := range f.entries {
		if f.entries[i].ReviewID == reviewID && f.entries[i].UserEmail == userEmail {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeWatchlistStore) DeleteByReview(_ context.Context, reviewID string) (int64, error) {
	var deleted int64
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.ReviewID == reviewID {
			deleted++
			continue
		}
		kept = append(kept, entry)
	}
	f.entries = kept
	return deleted, nil
}
