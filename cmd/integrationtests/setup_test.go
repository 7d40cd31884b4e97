package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
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

	"github.com/gin-gonic/gin"
)

// TestEnv bundles the wired engine with its seeded stores.
type TestEnv struct {
	Router    *gin.Engine
	Repo      *repository.MemoryRepo
	Directory *auth.MemoryDirectory
}

// SetupTestEnv initializes the full engine stack over in-memory stores with a
// standard set of users.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	directory := auth.NewMemoryDirectory(
		model.User{UserID: "admin1", Username: "admin", IsAdmin: true, ApprovedBidder: true, ApprovedSeller: true},
		model.User{UserID: "seller1", Username: "seller", ApprovedSeller: true},
		model.User{UserID: "bidder1", Username: "alice", ApprovedBidder: true},
		model.User{UserID: "bidder2", Username: "bob", ApprovedBidder: true},
		model.User{UserID: "lurker1", Username: "carol"},
	)
	sink := events.LogSink{}

	router := server.SetupRouter(server.Services{
		Bidding:    bidding.NewBiddingService(repo, directory, sink),
		Series:     series.NewSeriesService(repo, directory, sink),
		Livestream: livestream.NewLivestreamService(repo, repo, directory),
		Admin:      admin.NewAdminService(repo, directory),
		Identity:   directory,
	})

	return &TestEnv{Router: router, Repo: repo, Directory: directory}
}

// SeedLiveAuction stores a live auction ending at the given offset from now.
func (env *TestEnv) SeedLiveAuction(t *testing.T, auctionID string, endsIn time.Duration) {
	t.Helper()

	now := time.Now().UTC()
	if err := env.Repo.CreateAuction(model.Auction{
		AuctionID:    auctionID,
		Title:        auctionID + " title",
		SellerID:     "seller1",
		Status:       model.StatusLive,
		IsActive:     true,
		StartTime:    now,
		EndTime:      now.Add(endsIn),
		CurrentPrice: 100,
		MinIncrement: 5,
		CreatedAt:    now,
	}); err != nil {
		t.Fatalf("failed to seed auction: %v", err)
	}
}

// SeedSeries stores a packet series with upcoming member auctions.
func (env *TestEnv) SeedSeries(t *testing.T, seriesID string, auctionIDs ...string) {
	t.Helper()

	for _, id := range auctionIDs {
		if err := env.Repo.CreateAuction(model.Auction{
			AuctionID:      id,
			Title:          id + " title",
			SellerID:       "seller1",
			Status:         model.StatusUpcoming,
			IsActive:       true,
			CurrentPrice:   10,
			MinIncrement:   1,
			PacketSeriesID: seriesID,
		}); err != nil {
			t.Fatalf("failed to seed packet auction: %v", err)
		}
	}
	if err := env.Repo.CreateSeries(model.PacketSeries{
		SeriesID:    seriesID,
		SellerID:    "seller1",
		AuctionIDs:  auctionIDs,
		ActiveIndex: -1,
	}); err != nil {
		t.Fatalf("failed to seed series: %v", err)
	}
}

// ExecuteRequest executes an HTTP request as the given actor and returns the
// response recorder.
func (env *TestEnv) ExecuteRequest(t *testing.T, method, url, actorID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set("X-User-ID", actorID)
	}
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// ExecuteAndParse executes a request and unmarshals the JSON envelope,
// returning the "data" member when present.
func (env *TestEnv) ExecuteAndParse(t *testing.T, method, url, actorID string, body any) (any, *httptest.ResponseRecorder) {
	t.Helper()

	w := env.ExecuteRequest(t, method, url, actorID, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp["data"], w
}
