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

type SubmitPurchaseRequest struct {
	Address             string `json:"address"`
	Amount              string `json:"amount"`
	IncludeFollowingFee bool   `json:"include_following_fee"`
}

func toPurchaseRequest(address, amount string, includeFollowingFee bool) purchase.PurchaseRequest {
	return purchase.PurchaseRequest{
		CoinAddress:         address,
		AmountText:          amount,
		IncludeFollowingFee: includeFollowingFee,
	}
}

// SubmitPurchase godoc
// @Summary Submit a purchase
// @Description Re-quote server-side, persist the order and open a checkout session
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body SubmitPurchaseRequest true "Purchase request"
// @Success 201 {object} OrderResponse
// @Failure 202 {object} errorResponse "price refresh pending"
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse "amount below one token"
// @Failure 500 {object} errorResponse
// @Router /purchases [post]
func (h *Handler) SubmitPurchase(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SubmitPurchaseRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	address := strings.ToLower(strings.TrimSpace(req.Address))
	if err := h.addresses.ValidateAddress(address); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.amounts.ValidateAmountText(req.Amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.service.SubmitPurchase(r.Context(), toPurchaseRequest(address, req.Amount, req.IncludeFollowingFee))
	if err != nil {
		if errors.Is(err, domain.ErrCoinNotFound) {
			writeError(w, http.StatusNotFound, "coin not found")
			return
		}
		if errors.Is(err, domain.ErrPricePending) {
			writeError(w, http.StatusAccepted, "price refresh pending")
			return
		}
		if errors.Is(err, domain.ErrAmountTooSmall) {
			writeError(w, http.StatusUnprocessableEntity, "amount buys less than one token")
			return
		}
		msg := "purchase wasn't submitted"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SubmitPurchase", "address": address}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse(order))
}
