package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrSeriesNotFound  = errors.New("packet series not found")
	ErrSessionNotFound = errors.New("livestream session not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrVersionConflict = errors.New("stale version on write")
)

// Business logic errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrAuctionClosed   = errors.New("auction is not open for bidding")
	ErrAuctionInactive = errors.New("auction is deactivated")
	ErrNotAuthorized   = errors.New("caller is not authorized")
	ErrSeriesExhausted = errors.New("no further packet in series")
	ErrPacketStillLive = errors.New("current packet has not ended")
	ErrSessionFull     = errors.New("livestream session is at viewer capacity")
	ErrSessionExists   = errors.New("auction already has an active livestream")
	ErrSessionInactive = errors.New("livestream session is not active")
	ErrConflict        = errors.New("concurrent modification, retries exhausted")
)
