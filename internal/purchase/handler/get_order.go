package handler

import (
	"errors"
	"net/http"

	"valens/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetOrder godoc
// @Summary Get order
// @Description Get an order by its ID
// @Tags Purchases
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /orders/{id} [get]
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	orderID, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format")
		return
	}

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		msg := "ups, couldn't get order this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetOrder", "order_id": orderID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, orderResponse(order))
}
