package series

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

const casRetryLimit = 3

// SeriesService sequences multi-packet auctions: exactly zero or one member
// auction is live at any time, and packet i+1 activates only after packet i
// has ended. Activation for one series is serialized by a per-series lock.
type SeriesService struct {
	repo  repository.AuctionDB
	ident auth.Identity
	sink  events.Sink
	locks utils.KeyedMutex
	now   func() time.Time
}

// NewSeriesService creates a new SeriesService instance.
func NewSeriesService(repo repository.AuctionDB, ident auth.Identity, sink events.Sink) *SeriesService {
	return &SeriesService{
		repo:  repo,
		ident: ident,
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source. Intended for tests.
func (s *SeriesService) SetClock(now func() time.Time) {
	s.now = now
}

// ActivateNextPacket moves the series pointer forward and brings the next
// packet live, stamping its start and end times. Only the series seller or an
// admin may activate. A second concurrent call while one is in flight fails
// with ErrPacketStillLive rather than double-activating.
func (s *SeriesService) ActivateNextPacket(seriesID, actorID string) (model.Auction, error) {
	if seriesID == "" || actorID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing seriesID or actorID", auctionerrors.ErrInvalidInput)
	}

	unlock := s.locks.Lock("series:" + seriesID)
	defer unlock()

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		sr, err := s.repo.GetSeries(seriesID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: failed to load series %s: %w", seriesID, err)
		}
		if actorID != sr.SellerID && !s.ident.IsAdmin(actorID) {
			return model.Auction{}, fmt.Errorf("service: %w - user %s may not activate series %s",
				auctionerrors.ErrNotAuthorized, actorID, seriesID)
		}

		if err := s.requireCurrentEnded(sr); err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return model.Auction{}, err
		}

		next := sr.ActiveIndex + 1
		if next >= len(sr.AuctionIDs) {
			return model.Auction{}, fmt.Errorf("service: series %s: %w", seriesID, auctionerrors.ErrSeriesExhausted)
		}

		// Advance the pointer first: if the activation write below loses a
		// race, the series holds zero live packets, never two.
		sr.ActiveIndex = next
		if _, err := s.repo.CompareAndSwapSeries(sr); err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return model.Auction{}, fmt.Errorf("service: failed to advance series %s: %w", seriesID, err)
		}

		activated, err := s.activatePacket(sr.AuctionIDs[next], next)
		if err != nil {
			return model.Auction{}, err
		}

		s.sink.Emit(events.PacketActivated, map[string]any{
			"series_id":       seriesID,
			"auction_id":      activated.AuctionID,
			"packet_sequence": next,
			"end_time":        activated.EndTime,
		})
		return activated, nil
	}

	return model.Auction{}, fmt.Errorf("service: series %s: %w", seriesID, auctionerrors.ErrConflict)
}

// requireCurrentEnded verifies the currently pointed-at packet, if any, has
// ended. A live packet past its deadline counts as ended and is stamped so.
func (s *SeriesService) requireCurrentEnded(sr model.PacketSeries) error {
	if sr.ActiveIndex < 0 {
		return nil
	}

	current, err := s.repo.GetAuction(sr.AuctionIDs[sr.ActiveIndex])
	if err != nil {
		return fmt.Errorf("service: failed to load current packet of series %s: %w", sr.SeriesID, err)
	}
	if current.Status != model.StatusLive {
		return nil
	}
	if !s.now().After(current.EndTime) {
		return fmt.Errorf("service: packet %s: %w", current.AuctionID, auctionerrors.ErrPacketStillLive)
	}

	current.Status = model.StatusEnded
	if _, err := s.repo.CompareAndSwapAuction(current); err != nil {
		return err
	}
	s.sink.Emit(events.AuctionClosed, map[string]any{
		"auction_id":     current.AuctionID,
		"winner_user_id": current.WinnerUserID,
		"final_price":    current.CurrentPrice,
	})
	return nil
}

// activatePacket brings one packet live with a fresh time box.
func (s *SeriesService) activatePacket(auctionID string, sequence int) (model.Auction, error) {
	duration := time.Duration(s.repo.GetSettings().DefaultPacketDurationMinutes) * time.Minute

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		a, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: failed to load packet %s: %w", auctionID, err)
		}

		now := s.now()
		a.Status = model.StatusLive
		a.StartTime = now
		a.EndTime = now.Add(duration)
		a.PacketSequence = sequence

		stored, err := s.repo.CompareAndSwapAuction(a)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return model.Auction{}, fmt.Errorf("service: failed to activate packet %s: %w", auctionID, err)
		}
		return stored, nil
	}

	return model.Auction{}, fmt.Errorf("service: packet %s: %w", auctionID, auctionerrors.ErrConflict)
}

// GetSeries returns the series row.
func (s *SeriesService) GetSeries(seriesID string) (model.PacketSeries, error) {
	if seriesID == "" {
		return model.PacketSeries{}, fmt.Errorf("service: %w - empty series ID", auctionerrors.ErrInvalidInput)
	}

	sr, err := s.repo.GetSeries(seriesID)
	if err != nil {
		return model.PacketSeries{}, fmt.Errorf("service: failed to get series %s: %w", seriesID, err)
	}
	return sr, nil
}
