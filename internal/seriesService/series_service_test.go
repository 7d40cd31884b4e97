package series

import (
	"errors"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seedSeries(t *testing.T, repo *repository.MemoryRepo, packets int) {
	t.Helper()

	ids := make([]string, 0, packets)
	for i := 0; i < packets; i++ {
		id := string(rune('a'+i)) + "-packet"
		ids = append(ids, id)
		require.NoError(t, repo.CreateAuction(model.Auction{
			AuctionID:      id,
			Title:          "Lot " + id,
			SellerID:       "seller1",
			Status:         model.StatusUpcoming,
			IsActive:       true,
			CurrentPrice:   10,
			MinIncrement:   1,
			PacketSeriesID: "series1",
		}))
	}
	require.NoError(t, repo.CreateSeries(model.PacketSeries{
		SeriesID:    "series1",
		SellerID:    "seller1",
		AuctionIDs:  ids,
		ActiveIndex: -1,
	}))
}

func newService(repo *repository.MemoryRepo) *SeriesService {
	directory := auth.NewMemoryDirectory(
		model.User{UserID: "seller1", ApprovedSeller: true},
		model.User{UserID: "admin1", IsAdmin: true},
		model.User{UserID: "stranger1"},
	)
	svc := NewSeriesService(repo, directory, events.LogSink{})
	svc.SetClock(func() time.Time { return testBase })
	return svc
}

// Tests activation ordering and authorization.
func TestSeriesService_ActivateNextPacket(t *testing.T) {
	t.Parallel()

	t.Run("first_activation_by_seller", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedSeries(t, repo, 3)
		svc := newService(repo)

		activated, err := svc.ActivateNextPacket("series1", "seller1")
		require.NoError(t, err)
		require.Equal(t, "a-packet", activated.AuctionID)
		require.Equal(t, model.StatusLive, activated.Status)
		require.Equal(t, testBase, activated.StartTime)
		require.Equal(t, testBase.Add(60*time.Minute), activated.EndTime)
		require.Equal(t, 0, activated.PacketSequence)

		sr, err := repo.GetSeries("series1")
		require.NoError(t, err)
		require.Equal(t, 0, sr.ActiveIndex)
	})

	t.Run("second_activation_blocked_while_live", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedSeries(t, repo, 3)
		svc := newService(repo)

		_, err := svc.ActivateNextPacket("series1", "seller1")
		require.NoError(t, err)

		_, err = svc.ActivateNextPacket("series1", "seller1")
		require.True(t, errors.Is(err, auctionerrors.ErrPacketStillLive))
	})

	t.Run("activation_after_packet_ends", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedSeries(t, repo, 2)
		svc := newService(repo)

		_, err := svc.ActivateNextPacket("series1", "seller1")
		require.NoError(t, err)

		// jump past the first packet's deadline
		svc.SetClock(func() time.Time { return testBase.Add(61 * time.Minute) })

		second, err := svc.ActivateNextPacket("series1", "admin1")
		require.NoError(t, err)
		require.Equal(t, "b-packet", second.AuctionID)
		require.Equal(t, model.StatusLive, second.Status)

		// the expired first packet got stamped ended on the way
		first, err := repo.GetAuction("a-packet")
		require.NoError(t, err)
		require.Equal(t, model.StatusEnded, first.Status)
	})

	t.Run("series_exhausted", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedSeries(t, repo, 1)
		svc := newService(repo)

		_, err := svc.ActivateNextPacket("series1", "seller1")
		require.NoError(t, err)

		svc.SetClock(func() time.Time { return testBase.Add(61 * time.Minute) })
		_, err = svc.ActivateNextPacket("series1", "seller1")
		require.True(t, errors.Is(err, auctionerrors.ErrSeriesExhausted))
	})

	t.Run("not_authorized", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedSeries(t, repo, 2)
		svc := newService(repo)

		_, err := svc.ActivateNextPacket("series1", "stranger1")
		require.True(t, errors.Is(err, auctionerrors.ErrNotAuthorized))
	})

	t.Run("series_not_found", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		svc := newService(repo)

		_, err := svc.ActivateNextPacket("missing", "seller1")
		require.True(t, errors.Is(err, auctionerrors.ErrSeriesNotFound))
	})

	t.Run("empty_input", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		svc := newService(repo)

		_, err := svc.ActivateNextPacket("", "seller1")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
		_, err = svc.ActivateNextPacket("series1", "")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
	})
}

// Two rapid activation attempts before the first packet ends must activate
// exactly one packet; the loser fails with a state conflict, never a second
// live packet.
func TestSeriesService_ActivateNextPacket_ConcurrentCallsActivateOne(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedSeries(t, repo, 3)
	svc := newService(repo)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, results[i] = svc.ActivateNextPacket("series1", "seller1")
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			require.True(t, errors.Is(err, auctionerrors.ErrPacketStillLive), "unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded)

	// exactly one live packet across the series
	live := 0
	sr, err := repo.GetSeries("series1")
	require.NoError(t, err)
	for _, id := range sr.AuctionIDs {
		a, err := repo.GetAuction(id)
		require.NoError(t, err)
		if a.Status == model.StatusLive {
			live++
		}
	}
	require.Equal(t, 1, live)
	require.Equal(t, 0, sr.ActiveIndex)
}
