package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumaiyaamin/chill-gamer-server/models"
	"github.com/sumaiyaamin/chill-gamer-server/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

func (c *ReviewController) Create(ctx *gin.Context) {
	var req models.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	id, err := c.reviewService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

func (c *ReviewController) Get(ctx *gin.Context) {
	review, err := c.reviewService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

func (c *ReviewController) Update(ctx *gin.Context) {
	var req models.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if err := c.reviewService.Update(ctx.Request.Context(), ctx.Param("id"), &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

func (c *ReviewController) Delete(ctx *gin.Context) {
	err := c.reviewService.Delete(ctx.Request.Context(), ctx.Param("id"), ctx.Query("userEmail"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review deleted successfully",
	})
}

func (c *ReviewController) ListAll(ctx *gin.Context) {
	reviews, err := c.reviewService.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

func (c *ReviewController) ListTopRated(ctx *gin.Context) {
	reviews, err := c.reviewService.ListTopRated(ctx.Request.Context(), services.DefaultTopRatedLimit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}
