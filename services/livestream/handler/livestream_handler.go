package handler

import (
	"net/http"

	livestream "auction-engine/internal/livestreamService"
	model "auction-engine/internal/models"
	"auction-engine/services/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type LivestreamServiceInterface interface {
	StartLivestream(auctionID, actorID string, opts livestream.StreamOptions) (model.LivestreamSession, error)
	StopLivestream(auctionID, actorID string) error
	TouchViewer(sessionID, viewerID string) (int, error)
	LeaveLivestream(sessionID, viewerID string) error
	PublishSignal(sessionID, senderID, recipientID, signalType, payload string) (model.LivestreamSignal, error)
	ConsumeSignals(sessionID, userID string) ([]model.LivestreamSignal, error)
	GetSession(sessionID string) (model.LivestreamSession, error)
}

type LivestreamHandler struct {
	service LivestreamServiceInterface
}

func NewLivestreamHandler(service LivestreamServiceInterface) *LivestreamHandler {
	return &LivestreamHandler{service: service}
}

// StartLivestreamHandler handles POST /auctions/:auction_id/livestream
func (h *LivestreamHandler) StartLivestreamHandler(c *gin.Context) {
	var req helpers.StartLivestreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartLivestreamHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	actorID := helpers.ActorID(c)

	session, err := h.service.StartLivestream(auctionID, actorID, livestream.StreamOptions{
		AudioEnabled: req.AudioEnabled,
		MaxViewers:   req.MaxViewers,
	})
	if err != nil {
		helpers.RespondError(c, "StartLivestreamHandler", err, map[string]any{
			"auction_id": auctionID,
			"actor_id":   actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToSessionResponse(session), "livestream started successfully")
	helpers.LogSuccess("StartLivestreamHandler", "livestream started successfully", map[string]any{
		"session_id": session.SessionID,
		"auction_id": auctionID,
	})
}

// StopLivestreamHandler handles DELETE /auctions/:auction_id/livestream
func (h *LivestreamHandler) StopLivestreamHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	actorID := helpers.ActorID(c)

	if err := h.service.StopLivestream(auctionID, actorID); err != nil {
		helpers.RespondError(c, "StopLivestreamHandler", err, map[string]any{
			"auction_id": auctionID,
			"actor_id":   actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "livestream stopped successfully")
	helpers.LogSuccess("StopLivestreamHandler", "livestream stopped successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// HeartbeatHandler handles POST /livestreams/:session_id/heartbeat
func (h *LivestreamHandler) HeartbeatHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	viewerID := helpers.ActorID(c)

	count, err := h.service.TouchViewer(sessionID, viewerID)
	if err != nil {
		helpers.RespondError(c, "HeartbeatHandler", err, map[string]any{
			"session_id": sessionID,
			"viewer_id":  viewerID,
		})
		return
	}

	resp := helpers.HeartbeatResponse{
		SessionID:   sessionID,
		ViewerID:    viewerID,
		ViewerCount: count,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "heartbeat recorded")
}

// LeaveHandler handles POST /livestreams/:session_id/leave
func (h *LivestreamHandler) LeaveHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	viewerID := helpers.ActorID(c)

	if err := h.service.LeaveLivestream(sessionID, viewerID); err != nil {
		helpers.RespondError(c, "LeaveHandler", err, map[string]any{
			"session_id": sessionID,
			"viewer_id":  viewerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "left livestream")
}

// PublishSignalHandler handles POST /livestreams/:session_id/signals
func (h *LivestreamHandler) PublishSignalHandler(c *gin.Context) {
	var req helpers.PublishSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PublishSignalHandler", err)
		return
	}

	sessionID := c.Param("session_id")
	senderID := helpers.ActorID(c)

	sig, err := h.service.PublishSignal(sessionID, senderID, req.ToUserID, req.SignalType, req.Payload)
	if err != nil {
		helpers.RespondError(c, "PublishSignalHandler", err, map[string]any{
			"session_id":  sessionID,
			"sender_id":   senderID,
			"signal_type": req.SignalType,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToSignalResponse(sig), "signal published")
	helpers.LogSuccess("PublishSignalHandler", "signal published", map[string]any{
		"signal_id":   sig.SignalID,
		"session_id":  sessionID,
		"signal_type": sig.SignalType,
	})
}

// ConsumeSignalsHandler handles GET /livestreams/:session_id/signals
func (h *LivestreamHandler) ConsumeSignalsHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	userID := helpers.ActorID(c)

	signals, err := h.service.ConsumeSignals(sessionID, userID)
	if err != nil {
		helpers.RespondError(c, "ConsumeSignalsHandler", err, map[string]any{
			"session_id": sessionID,
			"user_id":    userID,
		})
		return
	}

	resp := make([]helpers.SignalResponse, 0, len(signals))
	for _, sig := range signals {
		resp = append(resp, helpers.ToSignalResponse(sig))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "signals retrieved")
}

// GetSessionHandler handles GET /livestreams/:session_id
func (h *LivestreamHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.service.GetSession(sessionID)
	if err != nil {
		helpers.RespondError(c, "GetSessionHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToSessionResponse(session), "session retrieved successfully")
}
