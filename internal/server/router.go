package server

import (
	admin "auction-engine/internal/adminService"
	"auction-engine/internal/auth"
	bidding "auction-engine/internal/biddingService"
	livestream "auction-engine/internal/livestreamService"
	series "auction-engine/internal/seriesService"
	adminhandler "auction-engine/services/admin/handler"
	biddinghandler "auction-engine/services/bidding/handler"
	livestreamhandler "auction-engine/services/livestream/handler"
	serieshandler "auction-engine/services/series/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the engine services the router exposes.
type Services struct {
	Bidding    *bidding.BiddingService
	Series     *series.SeriesService
	Livestream *livestream.LivestreamService
	Admin      *admin.AdminService
	Identity   auth.Identity
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	actor := ActorMiddleware(svc.Identity)

	biddingHandler := biddinghandler.NewBiddingHandler(svc.Bidding)
	seriesHandler := serieshandler.NewSeriesHandler(svc.Series)
	livestreamHandler := livestreamhandler.NewLivestreamHandler(svc.Livestream)
	adminHandler := adminhandler.NewAdminHandler(svc.Admin)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
		auctions.POST("/:auction_id/bids", actor, biddingHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/livestream", actor, livestreamHandler.StartLivestreamHandler)
		auctions.DELETE("/:auction_id/livestream", actor, livestreamHandler.StopLivestreamHandler)
	}

	seriesGroup := router.Group("/series")
	{
		seriesGroup.GET("/:series_id", seriesHandler.GetSeriesHandler)
		seriesGroup.POST("/:series_id/activate", actor, seriesHandler.ActivateNextPacketHandler)
	}

	livestreams := router.Group("/livestreams", actor)
	{
		livestreams.GET("/:session_id", livestreamHandler.GetSessionHandler)
		livestreams.POST("/:session_id/heartbeat", livestreamHandler.HeartbeatHandler)
		livestreams.POST("/:session_id/leave", livestreamHandler.LeaveHandler)
		livestreams.POST("/:session_id/signals", livestreamHandler.PublishSignalHandler)
		livestreams.GET("/:session_id/signals", livestreamHandler.ConsumeSignalsHandler)
	}

	adminGroup := router.Group("/admin", actor)
	{
		adminGroup.GET("/settings", adminHandler.GetSettingsHandler)
		adminGroup.PUT("/settings", adminHandler.UpdateSettingsHandler)
		adminGroup.PATCH("/auctions/:auction_id", adminHandler.ModerateAuctionHandler)
		adminGroup.PATCH("/users/:user_id", adminHandler.SetUserFlagsHandler)
	}

	return router
}
