package handler

import (
	"errors"
	"net/http"
	"time"

	"valens/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GetRefreshResponse struct {
	RefreshID string     `json:"refresh_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Address   string     `json:"address" example:"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984"`
	Status    string     `json:"status" example:"applied"`
	PriceUSD  *float64   `json:"price_usd,omitempty" example:"0.001"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" example:"2025-01-02T15:04:05Z"`
}

// GetRefresh godoc
// @Summary Get price refresh status
// @Description Get the status and, once applied, the price for a scheduled refresh ID
// @Tags Coins
// @Produce json
// @Param id path string true "Refresh ID"
// @Success 200 {object} GetRefreshResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /coins/refreshes/{id} [get]
func (h *Handler) GetRefresh(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	refreshID, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid refresh ID format")
		return
	}

	view, err := h.service.GetRefresh(r.Context(), refreshID)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshNotFound) {
			writeError(w, http.StatusNotFound, "price refresh not found")
			return
		}
		msg := "ups, couldn't get refresh status this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRefresh", "refresh_id": refreshID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetRefreshResponse{
		RefreshID: refreshID.String(),
		Address:   view.Address,
		Status:    string(view.Status),
		PriceUSD:  view.PriceUSD,
		UpdatedAt: view.UpdatedAt,
	})
}
