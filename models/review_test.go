package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFoldsLegacyAliases(t *testing.T) {
	published := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	review := Review{
		LegacyUserName:      "Old Timer",
		LegacyReviewerEmail: "old@example.com",
		LegacyPublishedDate: published,
	}

	review.Normalize()

	assert.Equal(t, "Old Timer", review.ReviewerName)
	assert.Equal(t, "old@example.com", review.UserEmail)
	assert.Equal(t, published, review.CreatedAt)
}

func TestNormalizeDefaultsWhenNothingKnown(t *testing.T) {
	var review Review
	review.Normalize()

	assert.Equal(t, "Anonymous", review.ReviewerName)
	assert.Equal(t, "No email provided", review.UserEmail)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestNormalizePrefersCanonicalFields(t *testing.T) {
	created := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	review := Review{
		ReviewerName:        "Current",
		UserEmail:           "current@example.com",
		CreatedAt:           created,
		LegacyUserName:      "Old Timer",
		LegacyReviewerEmail: "old@example.com",
		LegacyPublishedDate: created.AddDate(-2, 0, 0),
	}

	review.Normalize()

	assert.Equal(t, "Current", review.ReviewerName)
	assert.Equal(t, "current@example.com", review.UserEmail)
	assert.Equal(t, created, review.CreatedAt)
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "4.5", FormatRating(4.5))
	assert.Equal(t, "4.7", FormatRating(4.65+0.05))
	assert.Equal(t, "0.0", FormatRating(0))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "N/A", FormatPrice(0))
	assert.Equal(t, "19.99", FormatPrice(19.99))
	assert.Equal(t, "5.00", FormatPrice(5))
}

func TestReviewResponseRendersRatingAsText(t *testing.T) {
	resp := NewReviewResponse(Review{Title: "Celeste", Rating: 5})

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "5.0", decoded["rating"])
	assert.Equal(t, "Celeste", decoded["title"])
}

func TestFlexibleNumbersAcceptStringsAndNumbers(t *testing.T) {
	var req CreateReviewRequest
	body := `{
		"title": "Celeste",
		"rating": "4.5",
		"releaseYear": "2018",
		"price": 19.99
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, Float64String(4.5), req.Rating)
	assert.Equal(t, Int64String(2018), req.ReleaseYear)
	assert.Equal(t, Float64String(19.99), req.Price)

	var numeric CreateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rating": 4, "releaseYear": 2018.0}`), &numeric))
	assert.Equal(t, Float64String(4), numeric.Rating)
	assert.Equal(t, Int64String(2018), numeric.ReleaseYear)
}

func TestFlexibleNumbersTreatAbsentAsZero(t *testing.T) {
	var req CreateReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rating": null, "price": ""}`), &req))
	assert.Equal(t, Float64String(0), req.Rating)
	assert.Equal(t, Float64String(0), req.Price)
}

func TestFlexibleNumbersRejectGarbage(t *testing.T) {
	var req CreateReviewRequest
	err := json.Unmarshal([]byte(`{"rating": "very good"}`), &req)
	assert.Error(t, err)
}

func TestRegisterRequestCollectsUnknownFields(t *testing.T) {
	var req RegisterUserRequest
	body := `{
		"email": "gamer@example.com",
		"name": "Gamer",
		"bio": "RPG fan",
		"country": "BD"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "gamer@example.com", req.Email)
	assert.Equal(t, "Gamer", req.Name)
	assert.Equal(t, "RPG fan", req.Extra["bio"])
	assert.Equal(t, "BD", req.Extra["country"])
	// known fields are not duplicated into Extra
	assert.NotContains(t, req.Extra, "email")
	assert.NotContains(t, req.Extra, "name")
}

func TestRegisterRequestWithOnlyKnownFields(t *testing.T) {
	var req RegisterUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email": "gamer@example.com"}`), &req))
	assert.Nil(t, req.Extra)
}

func TestUserMarshalMergesExtraFields(t *testing.T) {
	user := User{
		Email: "gamer@example.com",
		Name:  "Gamer",
		Extra: map[string]interface{}{
			"bio":   "RPG fan",
			"email": "shadowed@example.com",
		},
	}

	encoded, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "RPG fan", decoded["bio"])
	// known fields win over patched extras with the same name
	assert.Equal(t, "gamer@example.com", decoded["email"])
}
