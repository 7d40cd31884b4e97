package handler

import (
	"net/http"

	admin "auction-engine/internal/adminService"
	model "auction-engine/internal/models"
	"auction-engine/services/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type AdminServiceInterface interface {
	UpdateSettings(actorID string, patch admin.SettingsPatch) (model.Settings, error)
	GetSettings(actorID string) (model.Settings, error)
	ModerateAuction(actorID, auctionID string, patch admin.ModerationPatch) (model.Auction, error)
	SetUserFlags(actorID, userID string, patch admin.UserFlagsPatch) (model.User, error)
}

type AdminHandler struct {
	service AdminServiceInterface
}

func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// UpdateSettingsHandler handles PUT /admin/settings
func (h *AdminHandler) UpdateSettingsHandler(c *gin.Context) {
	var req helpers.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateSettingsHandler", err)
		return
	}

	actorID := helpers.ActorID(c)
	settings, err := h.service.UpdateSettings(actorID, admin.SettingsPatch{
		SnipingWindowMinutes:         req.SnipingWindowMinutes,
		ExtensionMinutes:             req.ExtensionMinutes,
		DefaultMinIncrement:          req.DefaultMinIncrement,
		DefaultPacketDurationMinutes: req.DefaultPacketDurationMinutes,
		MaxImagesPerAuction:          req.MaxImagesPerAuction,
		BidderMaskingEnabled:         req.BidderMaskingEnabled,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateSettingsHandler", err, map[string]any{"actor_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, settings, "settings updated successfully")
	helpers.LogSuccess("UpdateSettingsHandler", "settings updated successfully", map[string]any{
		"actor_id": actorID,
	})
}

// GetSettingsHandler handles GET /admin/settings
func (h *AdminHandler) GetSettingsHandler(c *gin.Context) {
	actorID := helpers.ActorID(c)
	settings, err := h.service.GetSettings(actorID)
	if err != nil {
		helpers.RespondError(c, "GetSettingsHandler", err, map[string]any{"actor_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, settings, "settings retrieved successfully")
}

// ModerateAuctionHandler handles PATCH /admin/auctions/:auction_id
func (h *AdminHandler) ModerateAuctionHandler(c *gin.Context) {
	var req helpers.ModerateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ModerateAuctionHandler", err)
		return
	}

	actorID := helpers.ActorID(c)
	auctionID := c.Param("auction_id")

	auction, err := h.service.ModerateAuction(actorID, auctionID, admin.ModerationPatch{
		IsActive:    req.IsActive,
		IsModerated: req.IsModerated,
		Status:      req.Status,
	})
	if err != nil {
		helpers.RespondError(c, "ModerateAuctionHandler", err, map[string]any{
			"actor_id":   actorID,
			"auction_id": auctionID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction moderated successfully")
	helpers.LogSuccess("ModerateAuctionHandler", "auction moderated successfully", map[string]any{
		"actor_id":   actorID,
		"auction_id": auctionID,
	})
}

// SetUserFlagsHandler handles PATCH /admin/users/:user_id
func (h *AdminHandler) SetUserFlagsHandler(c *gin.Context) {
	var req helpers.UserFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetUserFlagsHandler", err)
		return
	}

	actorID := helpers.ActorID(c)
	userID := c.Param("user_id")

	user, err := h.service.SetUserFlags(actorID, userID, admin.UserFlagsPatch{
		ApprovedBidder: req.ApprovedBidder,
		ApprovedSeller: req.ApprovedSeller,
		IsAdmin:        req.IsAdmin,
	})
	if err != nil {
		helpers.RespondError(c, "SetUserFlagsHandler", err, map[string]any{
			"actor_id": actorID,
			"user_id":  userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user flags updated successfully")
	helpers.LogSuccess("SetUserFlagsHandler", "user flags updated successfully", map[string]any{
		"actor_id": actorID,
		"user_id":  userID,
	})
}
