package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type CoinItem struct {
	Address  string `json:"address" example:"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984"`
	Symbol   string `json:"symbol" example:"AVA"`
	Name     string `json:"name" example:"Ava Creator Coin"`
	VendorID string `json:"vendor_id" example:"vendor-42"`
}

type ListCoinsResponse struct {
	Coins []CoinItem `json:"coins"`
}

// ListCoins godoc
// @Summary List purchasable coins
// @Description Retrieve all active creator coins
// @Tags Coins
// @Produce json
// @Success 200 {object} ListCoinsResponse
// @Failure 500 {object} errorResponse
// @Router /coins [get]
func (h *Handler) ListCoins(w http.ResponseWriter, r *http.Request) {
	coins, err := h.service.ListCoins(r.Context())
	if err != nil {
		msg := "ups, couldn't list coins this time"
		logrus.WithError(err).WithField("handler", "ListCoins").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListCoinsResponse{Coins: make([]CoinItem, 0, len(coins))}
	for _, c := range coins {
		res.Coins = append(res.Coins, CoinItem{
			Address:  c.Address,
			Symbol:   c.Symbol,
			Name:     c.Name,
			VendorID: c.VendorID,
		})
	}
	writeJSON(w, http.StatusOK, res)
}
