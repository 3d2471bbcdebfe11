package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumaiyaamin/chill-gamer-server/models"
	"github.com/sumaiyaamin/chill-gamer-server/services"
)

type WatchlistController struct {
	watchlistService *services.WatchlistService
}

func NewWatchlistController(watchlistService *services.WatchlistService) *WatchlistController {
	return &WatchlistController{
		watchlistService: watchlistService,
	}
}

func (c *WatchlistController) Add(ctx *gin.Context) {
	var req models.AddWatchlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindMessage(err)})
		return
	}

	id, err := c.watchlistService.Add(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

func (c *WatchlistController) Check(ctx *gin.Context) {
	watchlisted, err := c.watchlistService.IsWatchlisted(
		ctx.Request.Context(),
		ctx.Param("reviewId"),
		ctx.Query("userEmail"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"isInWatchlist": watchlisted})
}

func (c *WatchlistController) Remove(ctx *gin.Context) {
	err := c.watchlistService.Remove(
		ctx.Request.Context(),
		ctx.Param("reviewId"),
		ctx.Query("userEmail"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist successfully"})
}
