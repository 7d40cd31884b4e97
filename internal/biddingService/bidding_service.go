package bidding

import (
	"errors"
	"fmt"
	"math"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// casRetryLimit bounds optimistic-write retries so callers are never left
// hanging; the keyed lock makes conflicts rare (only the close sweep or an
// admin write can race a bid).
const casRetryLimit = 3

// BiddingService owns bid admission and the auction lifecycle. All mutations
// of one auction's bidding state (price, end_time, winner) are serialized by
// a per-auction lock plus a versioned write.
type BiddingService struct {
	repo  repository.AuctionDB
	ident auth.Identity
	sink  events.Sink
	locks utils.KeyedMutex
	now   func() time.Time
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(repo repository.AuctionDB, ident auth.Identity, sink events.Sink) *BiddingService {
	return &BiddingService{
		repo:  repo,
		ident: ident,
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source. Intended for tests.
func (s *BiddingService) SetClock(now func() time.Time) {
	s.now = now
}

// PlaceBid validates and admits a bid, applying the anti-sniping extension
// atomically with the admission. It returns the updated auction snapshot and
// the recorded bid. A rejected bid leaves the auction completely unchanged.
func (s *BiddingService) PlaceBid(auctionID, bidderID string, amount float64) (model.Auction, model.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w - bid amount must be positive and finite", auctionerrors.ErrInvalidBid)
	}
	if !s.ident.IsApprovedBidder(bidderID) {
		return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w - user %s is not an approved bidder", auctionerrors.ErrNotAuthorized, bidderID)
	}

	unlock := s.locks.Lock("auction:" + auctionID)
	defer unlock()

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		a, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return model.Auction{}, model.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}

		settings := s.repo.GetSettings()
		now := s.now()

		if a.Status == model.StatusLive && now.After(a.EndTime) {
			// Lifecycle is a function of current time vs end_time: the
			// auction is already over regardless of whether the sweep
			// has stamped it yet.
			s.finalize(a)
			return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w - deadline has passed", auctionerrors.ErrAuctionClosed)
		}
		if !a.IsActive {
			return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionInactive)
		}
		if a.Status != model.StatusLive {
			return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w - auction status is %s", auctionerrors.ErrAuctionClosed, a.Status)
		}

		minIncrement := a.MinIncrement
		if minIncrement <= 0 {
			minIncrement = settings.DefaultMinIncrement
		}
		if amount < a.CurrentPrice+minIncrement {
			return model.Auction{}, model.Bid{}, fmt.Errorf("service: %w - minimum admissible bid is %.2f",
				auctionerrors.ErrBidTooLow, a.CurrentPrice+minIncrement)
		}

		updated := a
		updated.CurrentPrice = amount
		updated.WinnerUserID = bidderID

		// Anti-sniping: a bid inside the window pushes the deadline to
		// now + extension. end_time only ever moves forward; repeated
		// late bids keep re-extending with no cap.
		window := time.Duration(settings.SnipingWindowMinutes) * time.Minute
		if a.EndTime.Sub(now) <= window {
			extended := now.Add(time.Duration(settings.ExtensionMinutes) * time.Minute)
			if extended.After(updated.EndTime) {
				updated.EndTime = extended
			}
		}

		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		}

		stored, err := s.repo.AdmitBid(updated, bid)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return model.Auction{}, model.Bid{}, fmt.Errorf("service: failed to admit bid on auction %s: %w", auctionID, err)
		}

		s.sink.Emit(events.BidAdmitted, map[string]any{
			"auction_id": auctionID,
			"bid_id":     bid.BidID,
			"amount":     amount,
			"end_time":   stored.EndTime,
		})
		return stored, bid, nil
	}

	return model.Auction{}, model.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrConflict)
}

// GetAuction returns the auction snapshot with its lifecycle state derived
// from the current time, so a past-deadline auction reads as ended even
// before the sweep stamps it.
func (s *BiddingService) GetAuction(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	if a.Status == model.StatusLive && s.now().After(a.EndTime) {
		a.Status = model.StatusEnded
	}
	if s.repo.GetSettings().BidderMaskingEnabled {
		a.WinnerUserID = MaskBidder(a.WinnerUserID)
	}
	return a, nil
}

// GetBidsForAuction returns all bids for an auction in admission order.
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	if s.repo.GetSettings().BidderMaskingEnabled {
		for i := range bids {
			bids[i].BidderID = MaskBidder(bids[i].BidderID)
		}
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for an auction.
func (s *BiddingService) GetWinningBid(auctionID string) (model.Bid, error) {
	if auctionID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	bid, err := s.repo.GetWinningBid(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	if s.repo.GetSettings().BidderMaskingEnabled {
		bid.BidderID = MaskBidder(bid.BidderID)
	}
	return bid, nil
}

// FinalizeExpired transitions every live auction whose deadline has passed to
// ended and returns the number closed. It is housekeeping only: the read and
// bid paths derive the same answer from the clock without it.
func (s *BiddingService) FinalizeExpired() int {
	closed := 0
	for _, a := range s.repo.ListLiveAuctions() {
		if !s.now().After(a.EndTime) {
			continue
		}
		unlock := s.locks.Lock("auction:" + a.AuctionID)
		fresh, err := s.repo.GetAuction(a.AuctionID)
		if err == nil && fresh.Status == model.StatusLive && s.now().After(fresh.EndTime) {
			if s.finalize(fresh) {
				closed++
			}
		}
		unlock()
	}
	return closed
}

// finalize stamps a live, past-deadline auction as ended. The winner was
// tracked provisionally on every admitted bid and becomes final here.
func (s *BiddingService) finalize(a model.Auction) bool {
	a.Status = model.StatusEnded
	stored, err := s.repo.CompareAndSwapAuction(a)
	if err != nil {
		utils.Warn("finalize: could not stamp auction as ended", map[string]any{
			"auction_id": a.AuctionID,
			"error":      err.Error(),
		})
		return false
	}
	s.sink.Emit(events.AuctionClosed, map[string]any{
		"auction_id":     stored.AuctionID,
		"winner_user_id": stored.WinnerUserID,
		"final_price":    stored.CurrentPrice,
	})
	return true
}

// MaskBidder hides a bidder identity behind a stable short alias.
func MaskBidder(userID string) string {
	if userID == "" {
		return ""
	}
	if len(userID) > 6 {
		userID = userID[:6]
	}
	return "bidder-" + userID
}
