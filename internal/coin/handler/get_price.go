package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"valens/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetPriceResponse struct {
	Address   string    `json:"address"`
	PriceUSD  float64   `json:"price_usd"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetPrice godoc
// @Summary Get token price
// @Description Get the last known USD price for a coin
// @Tags Coins
// @Produce json
// @Param address path string true "Coin contract address"
// @Success 200 {object} GetPriceResponse
// @Failure 202 {object} errorResponse "price refresh pending"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /coins/{address}/price [get]
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	address := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "address")))

	if err := h.validator.ValidateAddress(address); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	price, err := h.service.GetPrice(r.Context(), address)
	if err != nil {
		if errors.Is(err, domain.ErrCoinNotFound) {
			writeError(w, http.StatusNotFound, "coin not found")
			return
		}
		if errors.Is(err, domain.ErrPricePending) {
			writeError(w, http.StatusAccepted, "price refresh pending")
			return
		}
		msg := "ups, couldn't get price this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetPrice", "address": address}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetPriceResponse{
		Address:   price.Address,
		PriceUSD:  price.PriceUSD,
		UpdatedAt: price.UpdatedAt,
	})
}
