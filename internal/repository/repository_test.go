package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Helper to create a new Auction
func newAuction(auctionID string, price float64) model.Auction {
	return model.Auction{
		AuctionID:    auctionID,
		Title:        fmt.Sprintf("%s title", auctionID),
		SellerID:     "seller1",
		Status:       model.StatusLive,
		IsActive:     true,
		EndTime:      testBase.Add(time.Hour),
		CurrentPrice: price,
		MinIncrement: 1,
	}
}

// Helper to create a new Bid
func newBid(bidID, auctionID, bidderID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// Test versioned auction writes
func TestMemoryRepo_CompareAndSwapAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", 100)))

	a, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, int64(1), a.Version)

	a.CurrentPrice = 150
	stored, err := repo.CompareAndSwapAuction(a)
	require.NoError(t, err)
	require.Equal(t, int64(2), stored.Version)
	require.Equal(t, 150.0, stored.CurrentPrice)

	// writing the stale row again must fail
	a.CurrentPrice = 200
	_, err = repo.CompareAndSwapAuction(a)
	require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)

	// the conflicting write left nothing behind
	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, 150.0, got.CurrentPrice)

	_, err = repo.CompareAndSwapAuction(newAuction("missing", 10))
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

// Test atomic bid admission
func TestMemoryRepo_AdmitBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", 100)))

	a, err := repo.GetAuction("auction1")
	require.NoError(t, err)

	a.CurrentPrice = 120
	a.WinnerUserID = "bidder1"
	stored, err := repo.AdmitBid(a, newBid("bid1", "auction1", "bidder1", 120, testBase))
	require.NoError(t, err)
	require.Equal(t, int64(2), stored.Version)

	bids, err := repo.GetBidsByAuction("auction1")
	require.NoError(t, err)
	require.Len(t, bids, 1)

	// a stale admission writes neither the row nor the bid
	_, err = repo.AdmitBid(a, newBid("bid2", "auction1", "bidder2", 130, testBase))
	require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)

	bids, err = repo.GetBidsByAuction("auction1")
	require.NoError(t, err)
	require.Len(t, bids, 1)

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, 120.0, got.CurrentPrice)
	require.Equal(t, "bidder1", got.WinnerUserID)
}

// Test GetWinningBid
func TestMemoryRepo_GetWinningBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", 0)))
	require.NoError(t, repo.CreateAuction(newAuction("auction2", 0)))

	admit := func(bid model.Bid) {
		a, err := repo.GetAuction(bid.AuctionID)
		require.NoError(t, err)
		a.CurrentPrice = bid.Amount
		a.WinnerUserID = bid.BidderID
		_, err = repo.AdmitBid(a, bid)
		require.NoError(t, err)
	}

	bid1 := newBid("bid1", "auction1", "bidder1", 100, testBase)
	bid2 := newBid("bid2", "auction1", "bidder2", 150, testBase.Add(time.Second))
	admit(bid1)
	admit(bid2)

	// tie on amount goes to the earlier bid
	tie1 := newBid("tie1", "auction2", "bidderA", 200, testBase)
	tie2 := newBid("tie2", "auction2", "bidderB", 200, testBase.Add(time.Second))
	admit(tie1)
	admit(tie2)

	tests := []struct {
		name      string
		auctionID string
		wantBid   model.Bid
		wantError bool
	}{
		{name: "highest_wins", auctionID: "auction1", wantBid: bid2},
		{name: "tie_earlier_wins", auctionID: "auction2", wantBid: tie1},
		{name: "unknown_auction", auctionID: "missing", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bid, err := repo.GetWinningBid(tc.auctionID)
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantBid, bid)
			}
		})
	}
}

// Concurrent CAS writers: exactly one write per version can win.
func TestMemoryRepo_ConcurrentCAS(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("auction1", 0)))

	base, err := repo.GetAuction("auction1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	const writers = 50
	wins := make([]bool, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			a := base
			a.CurrentPrice = float64(i + 1)
			if _, err := repo.CompareAndSwapAuction(a); err == nil {
				wins[i] = true
			}
		}()
	}
	wg.Wait()

	winners := 0
	for _, ok := range wins {
		if ok {
			winners++
		}
	}
	require.Equal(t, 1, winners)

	got, err := repo.GetAuction("auction1")
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
}

// Test series storage
func TestMemoryRepo_Series(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateSeries(model.PacketSeries{
		SeriesID:    "series1",
		SellerID:    "seller1",
		AuctionIDs:  []string{"p1", "p2"},
		ActiveIndex: -1,
	}))

	sr, err := repo.GetSeries("series1")
	require.NoError(t, err)
	require.Equal(t, int64(1), sr.Version)
	require.Equal(t, -1, sr.ActiveIndex)

	sr.ActiveIndex = 0
	stored, err := repo.CompareAndSwapSeries(sr)
	require.NoError(t, err)
	require.Equal(t, int64(2), stored.Version)

	_, err = repo.CompareAndSwapSeries(sr)
	require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)

	_, err = repo.GetSeries("missing")
	require.ErrorIs(t, err, auctionerrors.ErrSeriesNotFound)

	// the returned slice is a copy; mutating it does not leak into the store
	got, err := repo.GetSeries("series1")
	require.NoError(t, err)
	got.AuctionIDs[0] = "tampered"
	again, err := repo.GetSeries("series1")
	require.NoError(t, err)
	require.Equal(t, "p1", again.AuctionIDs[0])
}

// Test signal mailboxes
func TestMemoryRepo_SignalMailbox(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateSession(model.LivestreamSession{
		SessionID:     "session1",
		AuctionID:     "auction1",
		BroadcasterID: "seller1",
		MaxViewers:    5,
		Active:        true,
		StartedAt:     testBase,
	}))

	sig := func(id, recipient string, at time.Time) model.LivestreamSignal {
		return model.LivestreamSignal{
			SignalID:    id,
			SessionID:   "session1",
			SenderID:    "seller1",
			RecipientID: recipient,
			SignalType:  model.SignalOffer,
			Payload:     "{}",
			CreatedAt:   at,
		}
	}

	require.NoError(t, repo.EnqueueSignal(sig("s1", "viewer1", testBase)))
	require.NoError(t, repo.EnqueueSignal(sig("s2", "viewer1", testBase.Add(time.Second))))
	require.NoError(t, repo.EnqueueSignal(sig("s3", "viewer2", testBase)))

	// drain returns the recipient's signals in arrival order, once
	got := repo.DrainSignals("session1", "viewer1", time.Time{})
	require.Len(t, got, 2)
	require.Equal(t, "s1", got[0].SignalID)
	require.Equal(t, "s2", got[1].SignalID)
	require.Empty(t, repo.DrainSignals("session1", "viewer1", time.Time{}))

	// expired entries are dropped on read
	got = repo.DrainSignals("session1", "viewer2", testBase.Add(time.Minute))
	require.Empty(t, got)

	require.NoError(t, repo.EnqueueSignal(sig("s4", "viewer2", testBase)))
	repo.PurgeSessionSignals("session1")
	require.Empty(t, repo.DrainSignals("session1", "viewer2", time.Time{}))

	err := repo.EnqueueSignal(model.LivestreamSignal{SessionID: "missing", RecipientID: "viewer1"})
	require.ErrorIs(t, err, auctionerrors.ErrSessionNotFound)
}

// Concurrent presence writes through UpdateSession stay consistent.
func TestMemoryRepo_ConcurrentSessionUpdates(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateSession(model.LivestreamSession{
		SessionID:  "session1",
		AuctionID:  "auction1",
		MaxViewers: 100,
		Active:     true,
		Viewers:    map[string]time.Time{},
	}))

	var wg sync.WaitGroup
	const viewers = 50
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, err := repo.UpdateSession("session1", func(s *model.LivestreamSession) error {
				s.Viewers[fmt.Sprintf("viewer-%d", i)] = testBase
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetSession("session1")
	require.NoError(t, err)
	require.Len(t, got.Viewers, viewers)
}
