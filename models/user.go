package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Mirrors of the reviews and watchlist collections, maintained only by
	// the review/watchlist services. Reviews holds ObjectIDs, Watchlist
	// holds reviewId hex strings.
	Reviews   []primitive.ObjectID `bson:"reviews" json:"reviews"`
	Watchlist []string             `bson:"watchlist" json:"watchlist"`

	// Extra collects profile fields patched in by clients beyond the known
	// set. They round-trip through Mongo via the inline tag.
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

// MarshalJSON merges Extra into the response so patched profile fields are
// surfaced alongside the known ones. Known fields win on name collisions.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	base, err := json.Marshal(plain(u))
	if err != nil || len(u.Extra) == 0 {
		return base, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(base, &m); err != nil {
		return nil, err
	}
	for k, v := range u.Extra {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`

	// Extra holds any further profile fields the client supplied; they are
	// persisted on the user document alongside the known ones.
	Extra map[string]interface{} `json:"-"`
}

// UnmarshalJSON decodes the known fields and collects the rest into Extra,
// so registration preserves the whole client-supplied profile.
func (r *RegisterUserRequest) UnmarshalJSON(data []byte) error {
	type plain RegisterUserRequest
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	delete(all, "email")
	delete(all, "name")
	delete(all, "photoURL")

	*r = RegisterUserRequest(known)
	if len(all) > 0 {
		r.Extra = all
	}
	return nil
}
