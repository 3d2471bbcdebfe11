package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Image        string             `bson:"image" json:"image"`
	Genre        string             `bson:"genre" json:"genre"`
	Platform     string             `bson:"platform" json:"platform"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReleaseYear  int64              `bson:"releaseYear,omitempty" json:"releaseYear,omitempty"`
	Publisher    string             `bson:"publisher,omitempty" json:"publisher,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Description  string             `bson:"description" json:"description"`
	Review       string             `bson:"review,omitempty" json:"review,omitempty"`
	ReviewerName string             `bson:"reviewerName" json:"reviewerName"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	// Field names used by records written before the schema settled. Kept
	// readable so old documents survive; Normalize folds them into the
	// canonical fields above and every owner update rewrites the canonical
	// set, migrating the record forward.
	LegacyUserName      string    `bson:"userName,omitempty" json:"-"`
	LegacyReviewerEmail string    `bson:"reviewerEmail,omitempty" json:"-"`
	LegacyPublishedDate time.Time `bson:"publishedDate,omitempty" json:"-"`
}

// Normalize resolves legacy field aliases into the canonical field set.
func (r *Review) Normalize() {
	if r.ReviewerName == "" {
		if r.LegacyUserName != "" {
			r.ReviewerName = r.LegacyUserName
		} else {
			r.ReviewerName = "Anonymous"
		}
	}
	if r.UserEmail == "" {
		if r.LegacyReviewerEmail != "" {
			r.UserEmail = r.LegacyReviewerEmail
		} else {
			r.UserEmail = "No email provided"
		}
	}
	if r.CreatedAt.IsZero() {
		if !r.LegacyPublishedDate.IsZero() {
			r.CreatedAt = r.LegacyPublishedDate
		} else {
			r.CreatedAt = time.Now()
		}
	}
}

// ReviewResponse surfaces a review with its rating rendered as fixed
// one-decimal text.
type ReviewResponse struct {
	Review
	Rating string `json:"rating"`
}

// TopRatedReview additionally renders price as two-decimal text, or "N/A"
// when no price was recorded.
type TopRatedReview struct {
	Review
	Rating string `json:"rating"`
	Price  string `json:"price"`
}

func NewReviewResponse(r Review) ReviewResponse {
	r.Normalize()
	return ReviewResponse{Review: r, Rating: FormatRating(r.Rating)}
}

func NewTopRatedReview(r Review) TopRatedReview {
	r.Normalize()
	return TopRatedReview{
		Review: r,
		Rating: FormatRating(r.Rating),
		Price:  FormatPrice(r.Price),
	}
}

func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func FormatPrice(price float64) string {
	if price == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// CreateReviewRequest carries a review submission. Required fields are
// checked in the review service so validation failures can name the first
// missing field.
type CreateReviewRequest struct {
	Title        string        `json:"title"`
	Image        string        `json:"image"`
	Genre        string        `json:"genre"`
	Platform     string        `json:"platform"`
	Rating       Float64String `json:"rating"`
	ReleaseYear  Int64String   `json:"releaseYear"`
	Publisher    string        `json:"publisher"`
	Price        Float64String `json:"price"`
	Description  string        `json:"description"`
	Review       string        `json:"review"`
	ReviewerName string        `json:"reviewerName"`
	UserEmail    string        `json:"userEmail"`
}

// UpdateReviewRequest carries the replacement values for a review's mutable
// fields. UserEmail identifies the requester for the ownership check and is
// never written.
type UpdateReviewRequest struct {
	Title       string        `json:"title"`
	Image       string        `json:"image"`
	Genre       string        `json:"genre"`
	Platform    string        `json:"platform"`
	Rating      Float64String `json:"rating"`
	ReleaseYear Int64String   `json:"releaseYear"`
	Publisher   string        `json:"publisher"`
	Price       Float64String `json:"price"`
	Description string        `json:"description"`
	Review      string        `json:"review"`
	UserEmail   string        `json:"userEmail"`
}
