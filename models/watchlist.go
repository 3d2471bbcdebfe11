package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchlistEntry marks a review as bookmarked by a user. The
// (userEmail, reviewId) pair is unique per the index on the collection.
type WatchlistEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReviewID  string             `bson:"reviewId" json:"reviewId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}

type AddWatchlistRequest struct {
	ReviewID  string `json:"reviewId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}
