package main

import (
	"fmt"
	"os"
	"time"

	admin "auction-engine/internal/adminService"
	"auction-engine/internal/auth"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/events"
	livestream "auction-engine/internal/livestreamService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	series "auction-engine/internal/seriesService"
	"auction-engine/internal/server"
)

func main() {

	repo := repository.NewMemoryRepo()
	directory := auth.NewMemoryDirectory()
	sink := events.LogSink{}

	prepopulate(repo, directory)

	biddingSvc := bidding.NewBiddingService(repo, directory, sink)
	seriesSvc := series.NewSeriesService(repo, directory, sink)
	livestreamSvc := livestream.NewLivestreamService(repo, repo, directory)
	adminSvc := admin.NewAdminService(repo, directory)

	router := server.SetupRouter(server.Services{
		Bidding:    biddingSvc,
		Series:     seriesSvc,
		Livestream: livestreamSvc,
		Admin:      adminSvc,
		Identity:   directory,
	})

	port := getPort()
	fmt.Printf("Starting auction engine on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds sample users, auctions and a packet series into the
// in-memory stores.
func prepopulate(repo *repository.MemoryRepo, directory *auth.MemoryDirectory) {
	directory.AddUser(model.User{UserID: "admin1", Username: "admin", IsAdmin: true, ApprovedBidder: true, ApprovedSeller: true})
	directory.AddUser(model.User{UserID: "seller1", Username: "seller", ApprovedSeller: true})
	directory.AddUser(model.User{UserID: "bidder1", Username: "alice", ApprovedBidder: true})
	directory.AddUser(model.User{UserID: "bidder2", Username: "bob", ApprovedBidder: true})

	now := time.Now().UTC()

	auctions := []model.Auction{
		{
			AuctionID: "auction1", Title: "Vintage clock", Category: "antiques",
			SellerID: "seller1", Status: model.StatusLive, IsActive: true,
			StartTime: now, EndTime: now.Add(2 * time.Hour),
			CurrentPrice: 100, MinIncrement: 5, CreatedAt: now,
		},
		{
			AuctionID: "packet1", Title: "Stamp lot 1/2", Category: "collectibles",
			SellerID: "seller1", Status: model.StatusUpcoming, IsActive: true,
			CurrentPrice: 20, MinIncrement: 1,
			PacketSeriesID: "series1", CreatedAt: now,
		},
		{
			AuctionID: "packet2", Title: "Stamp lot 2/2", Category: "collectibles",
			SellerID: "seller1", Status: model.StatusUpcoming, IsActive: true,
			CurrentPrice: 20, MinIncrement: 1,
			PacketSeriesID: "series1", CreatedAt: now,
		},
	}
	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed auction %s: %v\n", a.AuctionID, err)
			os.Exit(1)
		}
	}

	if err := repo.CreateSeries(model.PacketSeries{
		SeriesID:    "series1",
		SellerID:    "seller1",
		AuctionIDs:  []string{"packet1", "packet2"},
		ActiveIndex: -1,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed series: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
