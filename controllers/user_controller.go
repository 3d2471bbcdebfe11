package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumaiyaamin/chill-gamer-server/models"
	"github.com/sumaiyaamin/chill-gamer-server/services"
)

type UserController struct {
	userService      *services.UserService
	reviewService    *services.ReviewService
	watchlistService *services.WatchlistService
}

func NewUserController(userService *services.UserService, reviewService *services.ReviewService, watchlistService *services.WatchlistService) *UserController {
	return &UserController{
		userService:      userService,
		reviewService:    reviewService,
		watchlistService: watchlistService,
	}
}

func (c *UserController) Register(ctx *gin.Context) {
	var req models.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindMessage(err)})
		return
	}

	result, err := c.userService.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if result.AlreadyExists {
		ctx.JSON(http.StatusOK, gin.H{
			"alreadyExists": true,
			"message":       "User already exists",
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID.Hex()})
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.userService.Get(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if err := c.userService.UpdateProfile(ctx.Request.Context(), ctx.Param("email"), patch); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (c *UserController) GetReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.ListByOwner(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

func (c *UserController) GetWatchlist(ctx *gin.Context) {
	entries, err := c.watchlistService.ListByUser(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
