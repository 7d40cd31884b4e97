package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key under which the middleware stores the
// resolved caller identity.
const ActorKey = "actor_id"

// ActorID returns the caller identity resolved by the actor middleware.
func ActorID(c *gin.Context) string {
	return c.GetString(ActorKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrSeriesNotFound):
		return http.StatusNotFound, "packet series not found"
	case errors.Is(err, auctionerrors.ErrSessionNotFound):
		return http.StatusNotFound, "livestream session not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is not open for bidding"
	case errors.Is(err, auctionerrors.ErrAuctionInactive):
		return http.StatusConflict, "auction is deactivated"
	case errors.Is(err, auctionerrors.ErrPacketStillLive):
		return http.StatusConflict, "current packet has not ended"
	case errors.Is(err, auctionerrors.ErrSeriesExhausted):
		return http.StatusConflict, "no further packet in series"
	case errors.Is(err, auctionerrors.ErrSessionFull):
		return http.StatusConflict, "livestream session is full"
	case errors.Is(err, auctionerrors.ErrSessionInactive):
		return http.StatusConflict, "livestream session is not active"
	case errors.Is(err, auctionerrors.ErrSessionExists):
		return http.StatusConflict, "auction already has an active livestream"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "concurrent modification, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps the error, sends the JSON error envelope and logs it.
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToAuctionResponse converts an auction snapshot to its response DTO.
func ToAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:      a.AuctionID,
		Title:          a.Title,
		Status:         a.Status,
		SellerID:       a.SellerID,
		CurrentPrice:   a.CurrentPrice,
		MinIncrement:   a.MinIncrement,
		WinnerUserID:   a.WinnerUserID,
		StartTime:      a.StartTime.UTC().Format(time.RFC3339),
		EndTime:        a.EndTime.UTC().Format(time.RFC3339),
		PacketSeriesID: a.PacketSeriesID,
		PacketSequence: a.PacketSequence,
	}
}

// ToBidResponse converts a bid to its response DTO.
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToSessionResponse converts a livestream session to its response DTO.
func ToSessionResponse(s model.LivestreamSession) LivestreamSessionResponse {
	return LivestreamSessionResponse{
		SessionID:     s.SessionID,
		AuctionID:     s.AuctionID,
		BroadcasterID: s.BroadcasterID,
		AudioEnabled:  s.AudioEnabled,
		MaxViewers:    s.MaxViewers,
		Active:        s.Active,
		ViewerCount:   len(s.Viewers),
		StartedAt:     s.StartedAt.UTC().Format(time.RFC3339),
	}
}

// ToSignalResponse converts a relayed signal to its response DTO.
func ToSignalResponse(sig model.LivestreamSignal) SignalResponse {
	return SignalResponse{
		SignalID:   sig.SignalID,
		SessionID:  sig.SessionID,
		SenderID:   sig.SenderID,
		SignalType: sig.SignalType,
		Payload:    sig.Payload,
		CreatedAt:  sig.CreatedAt.UTC().Format(time.RFC3339),
	}
}
