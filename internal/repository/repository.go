package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines auction, bid, series and settings storage for the engine.
//
// Writes to Auction and PacketSeries rows are optimistic: the caller passes
// back the row it read, and the write succeeds only if the stored version
// still matches, bumping the version on success.
type AuctionDB interface {
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListLiveAuctions() []model.Auction
	CompareAndSwapAuction(a model.Auction) (model.Auction, error)

	// AdmitBid writes the updated auction row and appends the bid as one
	// atomic step, so price, end_time and winner can never diverge from
	// the bid ledger.
	AdmitBid(updated model.Auction, bid model.Bid) (model.Auction, error)
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)

	CreateSeries(s model.PacketSeries) error
	GetSeries(seriesID string) (model.PacketSeries, error)
	CompareAndSwapSeries(s model.PacketSeries) (model.PacketSeries, error)

	GetSettings() model.Settings
	PutSettings(s model.Settings)
}

// LivestreamDB defines presence and signal-mailbox storage for livestream
// sessions. Signals are write-once, read-once.
type LivestreamDB interface {
	CreateSession(s model.LivestreamSession) error
	GetSession(sessionID string) (model.LivestreamSession, error)
	GetSessionByAuction(auctionID string) (model.LivestreamSession, error)
	UpdateSession(sessionID string, fn func(*model.LivestreamSession) error) (model.LivestreamSession, error)

	EnqueueSignal(sig model.LivestreamSignal) error
	DrainSignals(sessionID, recipientID string, notBefore time.Time) []model.LivestreamSignal
	PurgeSessionSignals(sessionID string)
}

type mailboxKey struct {
	sessionID   string
	recipientID string
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
// and LivestreamDB.
type MemoryRepo struct {
	mu        sync.RWMutex
	auctions  map[string]model.Auction
	bids      map[string][]model.Bid // key: auctionID -> bids in admission order
	series    map[string]model.PacketSeries
	sessions  map[string]model.LivestreamSession
	mailboxes map[mailboxKey][]model.LivestreamSignal
	settings  model.Settings
}

// NewMemoryRepo creates a new in-memory repository with default settings.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:  make(map[string]model.Auction),
		bids:      make(map[string][]model.Bid),
		series:    make(map[string]model.PacketSeries),
		sessions:  make(map[string]model.LivestreamSession),
		mailboxes: make(map[mailboxKey][]model.LivestreamSignal),
		settings:  model.DefaultSettings(),
	}
}

// CreateAuction stores a new auction row at version 1.
func (r *MemoryRepo) CreateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w - id already exists", a.AuctionID, auctionerrors.ErrInvalidInput)
	}
	a.Version = 1
	r.auctions[a.AuctionID] = a
	return nil
}

// GetAuction returns the auction row by id.
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ListLiveAuctions returns all auctions currently stored with live status.
// Used by the housekeeping sweep.
func (r *MemoryRepo) ListLiveAuctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0)
	for _, a := range r.auctions {
		if a.Status == model.StatusLive {
			out = append(out, a)
		}
	}
	return out
}

// CompareAndSwapAuction writes the auction row if its stored version still
// matches a.Version, and returns the stored row with the bumped version.
func (r *MemoryRepo) CompareAndSwapAuction(a model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.casAuctionLocked(a)
}

func (r *MemoryRepo) casAuctionLocked(a model.Auction) (model.Auction, error) {
	stored, ok := r.auctions[a.AuctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("swap auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if stored.Version != a.Version {
		return model.Auction{}, fmt.Errorf("swap auction %s at version %d (stored %d): %w",
			a.AuctionID, a.Version, stored.Version, auctionerrors.ErrVersionConflict)
	}
	a.Version++
	r.auctions[a.AuctionID] = a
	return a, nil
}

// AdmitBid writes the updated auction row and appends the bid atomically.
func (r *MemoryRepo) AdmitBid(updated model.Auction, bid model.Bid) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.casAuctionLocked(updated)
	if err != nil {
		return model.Auction{}, fmt.Errorf("admit bid %s: %w", bid.BidID, err)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return stored, nil
}

// GetBidsByAuction returns all bids for an auction in admission order.
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid(nil), r.bids[auctionID]...), nil
}

// GetWinningBid returns the highest bid for an auction; ties go to the
// earlier bid.
func (r *MemoryRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// CreateSeries stores a new packet series at version 1.
func (r *MemoryRepo) CreateSeries(s model.PacketSeries) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.series[s.SeriesID]; ok {
		return fmt.Errorf("create series %s: %w - id already exists", s.SeriesID, auctionerrors.ErrInvalidInput)
	}
	s.Version = 1
	s.AuctionIDs = append([]string(nil), s.AuctionIDs...)
	r.series[s.SeriesID] = s
	return nil
}

// GetSeries returns the packet series by id.
func (r *MemoryRepo) GetSeries(seriesID string) (model.PacketSeries, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.series[seriesID]
	if !ok {
		return model.PacketSeries{}, fmt.Errorf("get series %s: %w", seriesID, auctionerrors.ErrSeriesNotFound)
	}
	s.AuctionIDs = append([]string(nil), s.AuctionIDs...)
	return s, nil
}

// CompareAndSwapSeries writes the series row under the same versioning rule
// as auctions.
func (r *MemoryRepo) CompareAndSwapSeries(s model.PacketSeries) (model.PacketSeries, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.series[s.SeriesID]
	if !ok {
		return model.PacketSeries{}, fmt.Errorf("swap series %s: %w", s.SeriesID, auctionerrors.ErrSeriesNotFound)
	}
	if stored.Version != s.Version {
		return model.PacketSeries{}, fmt.Errorf("swap series %s at version %d (stored %d): %w",
			s.SeriesID, s.Version, stored.Version, auctionerrors.ErrVersionConflict)
	}
	s.Version++
	s.AuctionIDs = append([]string(nil), s.AuctionIDs...)
	r.series[s.SeriesID] = s
	return s, nil
}

// GetSettings returns the current settings row.
func (r *MemoryRepo) GetSettings() model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// PutSettings replaces the settings row. Last write wins.
func (r *MemoryRepo) PutSettings(s model.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
}

// CreateSession stores a new livestream session. One active session per
// auction is enforced by the livestream service, not here.
func (r *MemoryRepo) CreateSession(s model.LivestreamSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.SessionID]; ok {
		return fmt.Errorf("create session %s: %w - id already exists", s.SessionID, auctionerrors.ErrInvalidInput)
	}
	if s.Viewers == nil {
		s.Viewers = make(map[string]time.Time)
	}
	r.sessions[s.SessionID] = s
	return nil
}

// GetSession returns a copy of the session, including its viewer map.
func (r *MemoryRepo) GetSession(sessionID string) (model.LivestreamSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return model.LivestreamSession{}, fmt.Errorf("get session %s: %w", sessionID, auctionerrors.ErrSessionNotFound)
	}
	return copySession(s), nil
}

// GetSessionByAuction returns the active session bound to an auction, if any.
func (r *MemoryRepo) GetSessionByAuction(auctionID string) (model.LivestreamSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.AuctionID == auctionID && s.Active {
			return copySession(s), nil
		}
	}
	return model.LivestreamSession{}, fmt.Errorf("get session for auction %s: %w", auctionID, auctionerrors.ErrSessionNotFound)
}

// UpdateSession applies fn to the session under the repository lock, so
// presence mutations (heartbeat, leave, capacity checks) are serialized.
func (r *MemoryRepo) UpdateSession(sessionID string, fn func(*model.LivestreamSession) error) (model.LivestreamSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return model.LivestreamSession{}, fmt.Errorf("update session %s: %w", sessionID, auctionerrors.ErrSessionNotFound)
	}
	if err := fn(&s); err != nil {
		return model.LivestreamSession{}, err
	}
	r.sessions[sessionID] = s
	return copySession(s), nil
}

// EnqueueSignal appends a signal to the recipient's mailbox for the session.
func (r *MemoryRepo) EnqueueSignal(sig model.LivestreamSignal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sig.SessionID]; !ok {
		return fmt.Errorf("enqueue signal for session %s: %w", sig.SessionID, auctionerrors.ErrSessionNotFound)
	}
	key := mailboxKey{sessionID: sig.SessionID, recipientID: sig.RecipientID}
	r.mailboxes[key] = append(r.mailboxes[key], sig)
	return nil
}

// DrainSignals removes and returns the recipient's pending signals in arrival
// order. Signals created before notBefore have outlived their TTL and are
// dropped, not returned.
func (r *MemoryRepo) DrainSignals(sessionID, recipientID string, notBefore time.Time) []model.LivestreamSignal {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := mailboxKey{sessionID: sessionID, recipientID: recipientID}
	pending := r.mailboxes[key]
	delete(r.mailboxes, key)

	out := make([]model.LivestreamSignal, 0, len(pending))
	for _, sig := range pending {
		if sig.CreatedAt.Before(notBefore) {
			continue
		}
		out = append(out, sig)
	}
	return out
}

// PurgeSessionSignals drops every mailbox belonging to a session.
func (r *MemoryRepo) PurgeSessionSignals(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.mailboxes {
		if key.sessionID == sessionID {
			delete(r.mailboxes, key)
		}
	}
}

func copySession(s model.LivestreamSession) model.LivestreamSession {
	viewers := make(map[string]time.Time, len(s.Viewers))
	for id, hb := range s.Viewers {
		viewers[id] = hb
	}
	s.Viewers = viewers
	return s
}
