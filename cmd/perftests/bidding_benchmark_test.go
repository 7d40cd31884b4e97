package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auction-engine/internal/auth"
	bidding "auction-engine/internal/biddingService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

// discardSink drops events so benchmarks measure the engine, not the logger.
type discardSink struct{}

func (discardSink) Emit(string, map[string]any) {}

func setupBench(numAuctions int) (*repository.MemoryRepo, *bidding.BiddingService) {
	repo := repository.NewMemoryRepo()

	users := make([]model.User, 0, 64)
	for i := 0; i < 64; i++ {
		users = append(users, model.User{
			UserID:         fmt.Sprintf("bidder_%d", i),
			ApprovedBidder: true,
		})
	}
	directory := auth.NewMemoryDirectory(users...)

	now := time.Now().UTC()
	for i := 0; i < numAuctions; i++ {
		_ = repo.CreateAuction(model.Auction{
			AuctionID:    fmt.Sprintf("auction_%d", i),
			Title:        fmt.Sprintf("Lot %d", i),
			SellerID:     "seller_bench",
			Status:       model.StatusLive,
			IsActive:     true,
			StartTime:    now,
			EndTime:      now.Add(24 * time.Hour),
			CurrentPrice: 100,
			MinIncrement: 1,
		})
	}

	return repo, bidding.NewBiddingService(repo, directory, discardSink{})
}

// Benchmark 1: PlaceBid across isolated auctions (low contention).
func Benchmark_PlaceBid_IsolatedAuctions(b *testing.B) {
	_, svc := setupBench(b.N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		bidderID := fmt.Sprintf("bidder_%d", i%64)
		if _, _, err := svc.PlaceBid(auctionID, bidderID, float64(101+rand.Intn(100))); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid against one shared auction (high contention).
// Rejected bids are expected under contention and are not failures.
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	_, svc := setupBench(1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("bidder_%d", rnd.Intn(64))
			next := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _, _ = svc.PlaceBid("auction_0", bidderID, float64(next))
		}
	})
}

// Benchmark 3: GetWinningBid over auctions with existing histories.
func Benchmark_GetWinningBid(b *testing.B) {
	_, svc := setupBench(b.N)

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		for j := 0; j < 10; j++ {
			bidderID := fmt.Sprintf("bidder_%d", j)
			_, _, _ = svc.PlaceBid(auctionID, bidderID, float64(101+j*10))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetWinningBid(fmt.Sprintf("auction_%d", i)); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 4: mixed read/write workload over a small hot set of auctions.
func Benchmark_MixedWorkload(b *testing.B) {
	const hotSet = 10
	_, svc := setupBench(hotSet)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			auctionID := fmt.Sprintf("auction_%d", rnd.Intn(hotSet))
			if rnd.Intn(10) < 7 {
				_, _ = svc.GetWinningBid(auctionID)
				continue
			}
			bidderID := fmt.Sprintf("bidder_%d", rnd.Intn(64))
			next := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _, _ = svc.PlaceBid(auctionID, bidderID, float64(next))
		}
	})
}
