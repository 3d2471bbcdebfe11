package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sumaiyaamin/chill-gamer-server/apperrors"
)

// respondError maps service errors to status codes. Anything outside the
// known taxonomy is an unexpected failure.
func respondError(ctx *gin.Context, err error) {
	var (
		validation    *apperrors.ValidationError
		notFound      *apperrors.NotFoundError
		authorization *apperrors.AuthorizationError
		conflict      *apperrors.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": validation.Message})
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFound.Message})
	case errors.As(err, &authorization):
		ctx.JSON(http.StatusForbidden, gin.H{"message": authorization.Message})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": conflict.Message})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// bindMessage turns a gin binding failure into a client-facing message.
func bindMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, e := range ve {
			switch e.Field() {
			case "Email":
				if e.Tag() == "email" {
					return "Please provide a valid email address"
				}
				return "email is required"
			case "UserEmail":
				if e.Tag() == "email" {
					return "Please provide a valid email address"
				}
				return "userEmail is required"
			case "ReviewID":
				return "reviewId is required"
			}
			return "Invalid input data"
		}
	}
	return "Invalid request format"
}
