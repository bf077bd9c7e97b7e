package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"valens/internal/domain"

	"github.com/sirupsen/logrus"
)

type CreateQuoteRequest struct {
	Address             string `json:"address"`
	Amount              string `json:"amount"`
	IncludeFollowingFee bool   `json:"include_following_fee"`
}

type CreateQuoteResponse struct {
	BaseAmount  float64 `json:"base_amount" example:"100"`
	PlatformFee float64 `json:"platform_fee" example:"5"`
	VendorFee   float64 `json:"vendor_fee" example:"5"`
	TotalAmount float64 `json:"total_amount" example:"110"`
	TokenCount  int64   `json:"token_count" example:"100000"`
	TokenPrice  float64 `json:"token_price" example:"0.001"`
}

// CreateQuote godoc
// @Summary Quote a purchase
// @Description Compute the fee breakdown and token count for an amount at the current price
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "Quote request"
// @Success 200 {object} CreateQuoteResponse
// @Failure 202 {object} errorResponse "price refresh pending"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /quotes [post]
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateQuoteRequest
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

	q, err := h.service.Quote(r.Context(), toPurchaseRequest(address, req.Amount, req.IncludeFollowingFee))
	if err != nil {
		if errors.Is(err, domain.ErrCoinNotFound) {
			writeError(w, http.StatusNotFound, "coin not found")
			return
		}
		if errors.Is(err, domain.ErrPricePending) {
			writeError(w, http.StatusAccepted, "price refresh pending")
			return
		}
		msg := "ups, couldn't quote this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateQuote", "address": address}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, CreateQuoteResponse{
		BaseAmount:  q.BaseAmount,
		PlatformFee: q.PlatformFee,
		VendorFee:   q.FollowingFee,
		TotalAmount: q.TotalAmount,
		TokenCount:  q.TokenCount,
		TokenPrice:  q.TokenPrice,
	})
}
