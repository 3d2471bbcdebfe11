package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
	"github.com/sumaiyaamin/chill-gamer-server/models"
)

// DefaultTopRatedLimit caps the highest-rated-games listing.
const DefaultTopRatedLimit = 6

type ReviewService struct {
	reviews   ReviewStore
	watchlist WatchlistStore
	registry  UserRegistry
}

func NewReviewService(reviews ReviewStore, watchlist WatchlistStore, registry UserRegistry) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		watchlist: watchlist,
		registry:  registry,
	}
}

// requiredReviewFields is checked in order so a validation failure names the
// first missing field.
var requiredReviewFields = []struct {
	name    string
	missing func(*models.CreateReviewRequest) bool
}{
	{"title", func(r *models.CreateReviewRequest) bool { return r.Title == "" }},
	{"image", func(r *models.CreateReviewRequest) bool { return r.Image == "" }},
	{"genre", func(r *models.CreateReviewRequest) bool { return r.Genre == "" }},
	{"platform", func(r *models.CreateReviewRequest) bool { return r.Platform == "" }},
	{"rating", func(r *models.CreateReviewRequest) bool { return r.Rating == 0 }},
	{"description", func(r *models.CreateReviewRequest) bool { return r.Description == "" }},
	{"reviewerName", func(r *models.CreateReviewRequest) bool { return r.ReviewerName == "" }},
	{"userEmail", func(r *models.CreateReviewRequest) bool { return r.UserEmail == "" }},
}

func (s *ReviewService) Create(ctx context.Context, req *models.CreateReviewRequest) (primitive.ObjectID, error) {
	for _, field := range requiredReviewFields {
		if field.missing(req) {
			return primitive.NilObjectID, apperrors.MissingField(field.name)
		}
	}

	review := &models.Review{
		Title:        req.Title,
		Image:        req.Image,
		Genre:        req.Genre,
		Platform:     req.Platform,
		Rating:       float64(req.Rating),
		ReleaseYear:  int64(req.ReleaseYear),
		Publisher:    req.Publisher,
		Price:        float64(req.Price),
		Description:  req.Description,
		Review:       req.Review,
		ReviewerName: req.ReviewerName,
		UserEmail:    req.UserEmail,
		CreatedAt:    time.Now(),
	}

	id, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.registry.AttachReview(ctx, req.UserEmail, id)

	return id, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*models.ReviewResponse, error) {
	objectID, err := parseReviewID(id)
	if err != nil {
		return nil, err
	}

	review, err := s.reviews.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("Review not found")
	}

	resp := models.NewReviewResponse(*review)
	return &resp, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, req *models.UpdateReviewRequest) error {
	objectID, err := parseReviewID(id)
	if err != nil {
		return err
	}

	existing, err := s.reviews.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("Review not found")
	}
	if existing.UserEmail != req.UserEmail {
		return apperrors.Unauthorized("Not authorized to update this review")
	}

	// Identifier, owner email and createdAt are never part of the set.
	fields := map[string]interface{}{
		"title":       req.Title,
		"image":       req.Image,
		"genre":       req.Genre,
		"platform":    req.Platform,
		"rating":      float64(req.Rating),
		"releaseYear": int64(req.ReleaseYear),
		"publisher":   req.Publisher,
		"price":       float64(req.Price),
		"description": req.Description,
		"review":      req.Review,
		"updatedAt":   time.Now(),
	}

	matched, err := s.reviews.UpdateFields(ctx, objectID, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.NotFound("Review not found")
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id, requesterEmail string) error {
	if requesterEmail == "" {
		return apperrors.MissingField("userEmail")
	}

	objectID, err := parseReviewID(id)
	if err != nil {
		return err
	}

	review, err := s.reviews.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if review == nil {
		return apperrors.NotFound("Review not found")
	}
	if review.UserEmail != requesterEmail {
		return apperrors.Unauthorized("Not authorized to delete this review")
	}

	deleted, err := s.reviews.Delete(ctx, objectID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("Review not found")
	}

	// Cascade is best-effort: the review is gone either way, so failures
	// here are logged for operational visibility and not returned.
	s.registry.DetachReview(ctx, requesterEmail, objectID)
	if _, err := s.watchlist.DeleteByReview(ctx, objectID.Hex()); err != nil {
		log.Printf("Failed to cascade watchlist delete for review %s: %v", objectID.Hex(), err)
	}

	return nil
}

func (s *ReviewService) ListAll(ctx context.Context) ([]models.ReviewResponse, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return formatReviews(reviews), nil
}

func (s *ReviewService) ListTopRated(ctx context.Context, limit int64) ([]models.TopRatedReview, error) {
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	reviews, err := s.reviews.FindTopRated(ctx, limit)
	if err != nil {
		return nil, err
	}

	formatted := make([]models.TopRatedReview, 0, len(reviews))
	for _, review := range reviews {
		formatted = append(formatted, models.NewTopRatedReview(review))
	}
	return formatted, nil
}

func (s *ReviewService) ListByOwner(ctx context.Context, email string) ([]models.ReviewResponse, error) {
	reviews, err := s.reviews.FindByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	return formatReviews(reviews), nil
}

func formatReviews(reviews []models.Review) []models.ReviewResponse {
	formatted := make([]models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		formatted = append(formatted, models.NewReviewResponse(review))
	}
	return formatted
}

func parseReviewID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("Invalid review id")
	}
	return objectID, nil
}
