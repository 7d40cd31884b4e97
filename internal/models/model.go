package models

import "time"

// Auction status values. An auction moves upcoming -> live -> ended, never back.
const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusEnded    = "ended"
)

// Livestream signal types relayed between peers.
const (
	SignalOffer        = "offer"
	SignalAnswer       = "answer"
	SignalICECandidate = "ice_candidate"
	SignalLeave        = "leave"
)

// User represents a participant as reported by the identity collaborator.
type User struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	IsAdmin        bool   `json:"is_admin"`
	ApprovedBidder bool   `json:"approved_bidder"`
	ApprovedSeller bool   `json:"approved_seller"`
}

// Auction represents a single time-boxed listing.
//
// Version is an optimistic-concurrency counter: every write through the
// repository must present the version it read, and a successful write bumps it.
type Auction struct {
	AuctionID      string    `json:"auction_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	SellerID       string    `json:"seller_id"`
	Status         string    `json:"status"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	CurrentPrice   float64   `json:"current_price"`
	MinIncrement   float64   `json:"min_increment"`
	WinnerUserID   string    `json:"winner_user_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsModerated    bool      `json:"is_moderated"`
	PacketSeriesID string    `json:"packet_series_id,omitempty"`
	PacketSequence int       `json:"packet_sequence,omitempty"`
	Version        int64     `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Bid represents an admitted bid on an auction. Bids are immutable and never deleted.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// PacketSeries is an ordered run of auctions activated one at a time.
// ActiveIndex is -1 until the first packet has been activated.
type PacketSeries struct {
	SeriesID    string   `json:"series_id"`
	SellerID    string   `json:"seller_id"`
	AuctionIDs  []string `json:"auction_ids"`
	ActiveIndex int      `json:"active_index"`
	Version     int64    `json:"-"`
}

// Settings is the process-wide tunables row. Created once at provisioning,
// updated in place by admins, read by the engine on every bid.
type Settings struct {
	SnipingWindowMinutes         int     `json:"sniping_window_minutes"`
	ExtensionMinutes             int     `json:"extension_minutes"`
	DefaultMinIncrement          float64 `json:"default_min_increment"`
	DefaultPacketDurationMinutes int     `json:"default_packet_duration_minutes"`
	MaxImagesPerAuction          int     `json:"max_images_per_auction"`
	BidderMaskingEnabled         bool    `json:"bidder_masking_enabled"`
}

// DefaultSettings returns the provisioning-time settings row.
func DefaultSettings() Settings {
	return Settings{
		SnipingWindowMinutes:         5,
		ExtensionMinutes:             10,
		DefaultMinIncrement:          1,
		DefaultPacketDurationMinutes: 60,
		MaxImagesPerAuction:          10,
		BidderMaskingEnabled:         false,
	}
}

// LivestreamSession tracks viewer presence for one auction's stream.
// Viewers maps viewer user id to last heartbeat time.
type LivestreamSession struct {
	SessionID     string               `json:"session_id"`
	AuctionID     string               `json:"auction_id"`
	BroadcasterID string               `json:"broadcaster_id"`
	AudioEnabled  bool                 `json:"audio_enabled"`
	MaxViewers    int                  `json:"max_viewers"`
	Active        bool                 `json:"active"`
	Viewers       map[string]time.Time `json:"-"`
	StartedAt     time.Time            `json:"started_at"`
}

// LivestreamSignal is a relay payload between two named participants.
// Write-once, read-once: consuming it removes it from the mailbox.
type LivestreamSignal struct {
	SignalID    string    `json:"signal_id"`
	SessionID   string    `json:"session_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	SignalType  string    `json:"signal_type"`
	Payload     string    `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
}
