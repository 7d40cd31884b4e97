package helpers

// Request/Response DTOs

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID      string  `json:"auction_id"`
	Title          string  `json:"title"`
	Status         string  `json:"status"`
	SellerID       string  `json:"seller_id"`
	CurrentPrice   float64 `json:"current_price"`
	MinIncrement   float64 `json:"min_increment"`
	WinnerUserID   string  `json:"winner_user_id,omitempty"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	PacketSeriesID string  `json:"packet_series_id,omitempty"`
	PacketSequence int     `json:"packet_sequence,omitempty"`
}

type PlaceBidResponse struct {
	Bid     BidResponse     `json:"bid"`
	Auction AuctionResponse `json:"auction"`
}

type StartLivestreamRequest struct {
	AudioEnabled bool `json:"audio_enabled"`
	MaxViewers   int  `json:"max_viewers" binding:"omitempty,gt=0"`
}

type LivestreamSessionResponse struct {
	SessionID     string `json:"session_id"`
	AuctionID     string `json:"auction_id"`
	BroadcasterID string `json:"broadcaster_id"`
	AudioEnabled  bool   `json:"audio_enabled"`
	MaxViewers    int    `json:"max_viewers"`
	Active        bool   `json:"active"`
	ViewerCount   int    `json:"viewer_count"`
	StartedAt     string `json:"started_at"`
}

type HeartbeatResponse struct {
	SessionID   string `json:"session_id"`
	ViewerID    string `json:"viewer_id"`
	ViewerCount int    `json:"viewer_count"`
}

type PublishSignalRequest struct {
	ToUserID   string `json:"to_user_id" binding:"required"`
	SignalType string `json:"signal_type" binding:"required"`
	Payload    string `json:"payload"`
}

type SignalResponse struct {
	SignalID   string `json:"signal_id"`
	SessionID  string `json:"session_id"`
	SenderID   string `json:"sender_id"`
	SignalType string `json:"signal_type"`
	Payload    string `json:"payload"`
	CreatedAt  string `json:"created_at"`
}

type UpdateSettingsRequest struct {
	SnipingWindowMinutes         *int     `json:"sniping_window_minutes"`
	ExtensionMinutes             *int     `json:"extension_minutes"`
	DefaultMinIncrement          *float64 `json:"default_min_increment"`
	DefaultPacketDurationMinutes *int     `json:"default_packet_duration_minutes"`
	MaxImagesPerAuction          *int     `json:"max_images_per_auction"`
	BidderMaskingEnabled         *bool    `json:"bidder_masking_enabled"`
}

type ModerateAuctionRequest struct {
	IsActive    *bool   `json:"is_active"`
	IsModerated *bool   `json:"is_moderated"`
	Status      *string `json:"status"`
}

type UserFlagsRequest struct {
	ApprovedBidder *bool `json:"approved_bidder"`
	ApprovedSeller *bool `json:"approved_seller"`
	IsAdmin        *bool `json:"is_admin"`
}
