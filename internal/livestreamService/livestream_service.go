package livestream

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auth"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

const (
	// Viewers are expected to heartbeat every 15s; presence without a
	// heartbeat inside three intervals is treated as departed, evicted
	// lazily on the next presence read or write.
	stalenessWindow = 45 * time.Second

	// Undelivered signals are dropped after this TTL to bound mailbox memory.
	signalTTL = 60 * time.Second

	defaultMaxViewers = 50
)

// StreamOptions configures a new livestream session.
type StreamOptions struct {
	AudioEnabled bool
	MaxViewers   int
}

// LivestreamService tracks viewer presence per auction stream and relays
// signaling payloads between named participants. Delivery is best-effort:
// an unread signal simply expires.
type LivestreamService struct {
	repo     repository.LivestreamDB
	auctions repository.AuctionDB
	ident    auth.Identity
	now      func() time.Time
}

// NewLivestreamService creates a new LivestreamService instance.
func NewLivestreamService(repo repository.LivestreamDB, auctions repository.AuctionDB, ident auth.Identity) *LivestreamService {
	return &LivestreamService{
		repo:     repo,
		auctions: auctions,
		ident:    ident,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source. Intended for tests.
func (s *LivestreamService) SetClock(now func() time.Time) {
	s.now = now
}

// StartLivestream creates a session bound to the auction. Only the auction's
// seller or an admin may start one, and an auction carries at most one active
// session.
func (s *LivestreamService) StartLivestream(auctionID, actorID string, opts StreamOptions) (model.LivestreamSession, error) {
	if auctionID == "" || actorID == "" {
		return model.LivestreamSession{}, fmt.Errorf("service: %w - missing auctionID or actorID", auctionerrors.ErrInvalidInput)
	}

	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return model.LivestreamSession{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if actorID != a.SellerID && !s.ident.IsAdmin(actorID) {
		return model.LivestreamSession{}, fmt.Errorf("service: %w - user %s may not stream auction %s",
			auctionerrors.ErrNotAuthorized, actorID, auctionID)
	}
	if _, err := s.repo.GetSessionByAuction(auctionID); err == nil {
		return model.LivestreamSession{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrSessionExists)
	}

	maxViewers := opts.MaxViewers
	if maxViewers <= 0 {
		maxViewers = defaultMaxViewers
	}

	session := model.LivestreamSession{
		SessionID:     utils.GenerateID(),
		AuctionID:     auctionID,
		BroadcasterID: actorID,
		AudioEnabled:  opts.AudioEnabled,
		MaxViewers:    maxViewers,
		Active:        true,
		Viewers:       make(map[string]time.Time),
		StartedAt:     s.now(),
	}
	if err := s.repo.CreateSession(session); err != nil {
		return model.LivestreamSession{}, fmt.Errorf("service: failed to create session for auction %s: %w", auctionID, err)
	}
	return session, nil
}

// TouchViewer upserts a viewer's heartbeat. Existing viewers always refresh;
// a new viewer is admitted only if capacity remains after stale presence is
// evicted. It returns the current viewer count.
func (s *LivestreamService) TouchViewer(sessionID, viewerID string) (int, error) {
	if sessionID == "" || viewerID == "" {
		return 0, fmt.Errorf("service: %w - missing sessionID or viewerID", auctionerrors.ErrInvalidInput)
	}

	updated, err := s.repo.UpdateSession(sessionID, func(sess *model.LivestreamSession) error {
		if !sess.Active {
			return fmt.Errorf("service: session %s: %w", sessionID, auctionerrors.ErrSessionInactive)
		}
		now := s.now()
		evictStale(sess, now)

		if _, present := sess.Viewers[viewerID]; !present && len(sess.Viewers) >= sess.MaxViewers {
			return fmt.Errorf("service: session %s: %w", sessionID, auctionerrors.ErrSessionFull)
		}
		sess.Viewers[viewerID] = now
		return nil
	})
	if err != nil {
		if errors.Is(err, auctionerrors.ErrSessionNotFound) {
			return 0, fmt.Errorf("service: heartbeat: %w", err)
		}
		return 0, err
	}
	return len(updated.Viewers), nil
}

// LeaveLivestream removes the viewer's presence entry. Leaving twice, or
// leaving without ever joining, is not an error.
func (s *LivestreamService) LeaveLivestream(sessionID, viewerID string) error {
	if sessionID == "" || viewerID == "" {
		return fmt.Errorf("service: %w - missing sessionID or viewerID", auctionerrors.ErrInvalidInput)
	}

	_, err := s.repo.UpdateSession(sessionID, func(sess *model.LivestreamSession) error {
		delete(sess.Viewers, viewerID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: leave: %w", err)
	}
	return nil
}

// PublishSignal validates the sender holds presence in an active session and
// enqueues the payload for the named recipient. Fire-and-forget: nothing is
// retried if the recipient never polls.
func (s *LivestreamService) PublishSignal(sessionID, senderID, recipientID, signalType, payload string) (model.LivestreamSignal, error) {
	if sessionID == "" || senderID == "" || recipientID == "" {
		return model.LivestreamSignal{}, fmt.Errorf("service: %w - missing sessionID, senderID or recipientID", auctionerrors.ErrInvalidInput)
	}
	switch signalType {
	case model.SignalOffer, model.SignalAnswer, model.SignalICECandidate, model.SignalLeave:
	default:
		return model.LivestreamSignal{}, fmt.Errorf("service: %w - unknown signal type %q", auctionerrors.ErrInvalidInput, signalType)
	}

	sess, err := s.repo.GetSession(sessionID)
	if err != nil {
		return model.LivestreamSignal{}, fmt.Errorf("service: publish signal: %w", err)
	}
	if !sess.Active {
		return model.LivestreamSignal{}, fmt.Errorf("service: session %s: %w", sessionID, auctionerrors.ErrSessionInactive)
	}

	now := s.now()
	if !s.holdsPresence(sess, senderID, now) {
		return model.LivestreamSignal{}, fmt.Errorf("service: %w - sender %s holds no presence in session %s",
			auctionerrors.ErrNotAuthorized, senderID, sessionID)
	}

	sig := model.LivestreamSignal{
		SignalID:    utils.GenerateID(),
		SessionID:   sessionID,
		SenderID:    senderID,
		RecipientID: recipientID,
		SignalType:  signalType,
		Payload:     payload,
		CreatedAt:   now,
	}
	if err := s.repo.EnqueueSignal(sig); err != nil {
		return model.LivestreamSignal{}, fmt.Errorf("service: publish signal: %w", err)
	}
	return sig, nil
}

// ConsumeSignals drains the caller's pending signals for the session. Each
// signal is delivered at most once; signals older than the TTL are dropped.
func (s *LivestreamService) ConsumeSignals(sessionID, userID string) ([]model.LivestreamSignal, error) {
	if sessionID == "" || userID == "" {
		return nil, fmt.Errorf("service: %w - missing sessionID or userID", auctionerrors.ErrInvalidInput)
	}
	if _, err := s.repo.GetSession(sessionID); err != nil {
		return nil, fmt.Errorf("service: consume signals: %w", err)
	}

	cutoff := s.now().Add(-signalTTL)
	return s.repo.DrainSignals(sessionID, userID, cutoff), nil
}

// StopLivestream marks the auction's session inactive, drops all presence
// entries and purges undelivered signals.
func (s *LivestreamService) StopLivestream(auctionID, actorID string) error {
	if auctionID == "" || actorID == "" {
		return fmt.Errorf("service: %w - missing auctionID or actorID", auctionerrors.ErrInvalidInput)
	}

	sess, err := s.repo.GetSessionByAuction(auctionID)
	if err != nil {
		return fmt.Errorf("service: stop livestream: %w", err)
	}
	if actorID != sess.BroadcasterID && !s.ident.IsAdmin(actorID) {
		return fmt.Errorf("service: %w - user %s may not stop the stream for auction %s",
			auctionerrors.ErrNotAuthorized, actorID, auctionID)
	}

	_, err = s.repo.UpdateSession(sess.SessionID, func(st *model.LivestreamSession) error {
		st.Active = false
		st.Viewers = make(map[string]time.Time)
		return nil
	})
	if err != nil {
		return fmt.Errorf("service: stop livestream: %w", err)
	}
	s.repo.PurgeSessionSignals(sess.SessionID)
	return nil
}

// GetSession returns the session with stale presence filtered out of the view.
func (s *LivestreamService) GetSession(sessionID string) (model.LivestreamSession, error) {
	if sessionID == "" {
		return model.LivestreamSession{}, fmt.Errorf("service: %w - empty session ID", auctionerrors.ErrInvalidInput)
	}

	sess, err := s.repo.GetSession(sessionID)
	if err != nil {
		return model.LivestreamSession{}, fmt.Errorf("service: failed to get session %s: %w", sessionID, err)
	}
	evictStale(&sess, s.now())
	return sess, nil
}

// holdsPresence reports whether userID is the broadcaster or a viewer with a
// fresh heartbeat.
func (s *LivestreamService) holdsPresence(sess model.LivestreamSession, userID string, now time.Time) bool {
	if userID == sess.BroadcasterID {
		return true
	}
	hb, ok := sess.Viewers[userID]
	return ok && now.Sub(hb) <= stalenessWindow
}

// evictStale removes viewers whose last heartbeat is outside the staleness
// window. Departure needs no explicit leave call.
func evictStale(sess *model.LivestreamSession, now time.Time) {
	for id, hb := range sess.Viewers {
		if now.Sub(hb) > stalenessWindow {
			delete(sess.Viewers, id)
		}
	}
}
