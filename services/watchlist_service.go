package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
	"github.com/sumaiyaamin/chill-gamer-server/models"
)

type WatchlistService struct {
	watchlist WatchlistStore
	registry  UserRegistry
}

func NewWatchlistService(watchlist WatchlistStore, registry UserRegistry) *WatchlistService {
	return &WatchlistService{
		watchlist: watchlist,
		registry:  registry,
	}
}

func (s *WatchlistService) Add(ctx context.Context, req *models.AddWatchlistRequest) (primitive.ObjectID, error) {
	existing, err := s.watchlist.FindEntry(ctx, req.ReviewID, req.UserEmail)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, apperrors.Conflict("Already in watchlist")
	}

	entry := &models.WatchlistEntry{
		ReviewID:  req.ReviewID,
		UserEmail: req.UserEmail,
		AddedAt:   time.Now(),
	}

	// The store reports a ConflictError itself if a concurrent add slipped
	// past the check above.
	id, err := s.watchlist.Insert(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.registry.AttachWatchlistEntry(ctx, req.UserEmail, req.ReviewID)

	return id, nil
}

func (s *WatchlistService) IsWatchlisted(ctx context.Context, reviewID, userEmail string) (bool, error) {
	if userEmail == "" {
		return false, apperrors.MissingField("userEmail")
	}

	entry, err := s.watchlist.FindEntry(ctx, reviewID, userEmail)
	if err != nil {
		return false, err
	}
	return entry != nil, nil
}

func (s *WatchlistService) ListByUser(ctx context.Context, email string) ([]models.WatchlistEntry, error) {
	entries, err := s.watchlist.FindByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	return entries, nil
}

func (s *WatchlistService) Remove(ctx context.Context, reviewID, userEmail string) error {
	if userEmail == "" {
		return apperrors.MissingField("userEmail")
	}

	deleted, err := s.watchlist.DeleteEntry(ctx, reviewID, userEmail)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Item not found in watchlist")
	}

	s.registry.DetachWatchlistEntry(ctx, userEmail, reviewID)

	return nil
}
