package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"valens/internal/domain"
	"valens/internal/purchase"

	"github.com/sirupsen/logrus"
)

type SubmitSellRequest struct {
	Address      string `json:"address"`
	AmountTokens string `json:"amount_tokens"`
}

// SubmitSell godoc
// @Summary Submit a sell
// @Description Persist a sell order and forward it to the checkout service
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body SubmitSellRequest true "Sell request"
// @Success 201 {object} OrderResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse "invalid token amount"
// @Failure 500 {object} errorResponse
// @Router /sells [post]
func (h *Handler) SubmitSell(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SubmitSellRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	address := strings.ToLower(strings.TrimSpace(req.Address))
	if err := h.addresses.ValidateAddress(address); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.service.SubmitSell(r.Context(), purchase.SellRequest{
		CoinAddress:  address,
		AmountTokens: strings.TrimSpace(req.AmountTokens),
	})
	if err != nil {
		if errors.Is(err, domain.ErrCoinNotFound) {
			writeError(w, http.StatusNotFound, "coin not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidTokenAmount) {
			writeError(w, http.StatusUnprocessableEntity, "token amount must be a positive integer")
			return
		}
		msg := "sell wasn't submitted"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SubmitSell", "address": address}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse(order))
}
