package domain

import "github.com/google/uuid"

type PriceRefreshStatus string

const (
	RefreshPending PriceRefreshStatus = "pending"
	RefreshApplied PriceRefreshStatus = "applied"
)

type PendingPriceRefresh struct {
	RefreshID uuid.UUID `json:"refresh_id"`
	CoinID    int64     `json:"coin_id"`
	Address   string    `json:"address"`
}

type AppliedPriceRefresh struct {
	RefreshID uuid.UUID `json:"refresh_id"`
	CoinID    int64     `json:"coin_id"`
	PriceUSD  float64   `json:"price_usd"`
}
