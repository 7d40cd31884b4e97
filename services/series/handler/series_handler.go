package handler

import (
	"net/http"

	model "auction-engine/internal/models"
	"auction-engine/services/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type SeriesServiceInterface interface {
	ActivateNextPacket(seriesID, actorID string) (model.Auction, error)
	GetSeries(seriesID string) (model.PacketSeries, error)
}

type SeriesHandler struct {
	service SeriesServiceInterface
}

func NewSeriesHandler(service SeriesServiceInterface) *SeriesHandler {
	return &SeriesHandler{service: service}
}

// ActivateNextPacketHandler handles POST /series/:series_id/activate
func (h *SeriesHandler) ActivateNextPacketHandler(c *gin.Context) {
	seriesID := c.Param("series_id")
	actorID := helpers.ActorID(c)

	activated, err := h.service.ActivateNextPacket(seriesID, actorID)
	if err != nil {
		helpers.RespondError(c, "ActivateNextPacketHandler", err, map[string]any{
			"series_id": seriesID,
			"actor_id":  actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(activated), "packet activated successfully")
	helpers.LogSuccess("ActivateNextPacketHandler", "packet activated successfully", map[string]any{
		"series_id":       seriesID,
		"auction_id":      activated.AuctionID,
		"packet_sequence": activated.PacketSequence,
	})
}

// GetSeriesHandler handles GET /series/:series_id
func (h *SeriesHandler) GetSeriesHandler(c *gin.Context) {
	seriesID := c.Param("series_id")
	sr, err := h.service.GetSeries(seriesID)
	if err != nil {
		helpers.RespondError(c, "GetSeriesHandler", err, map[string]any{"series_id": seriesID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, sr, "series retrieved successfully")
}
