package domain

import (
	"time"
)

// Coin is a creator-bound token tracked by the platform. Every coin belongs
// to exactly one vendor (the creator it is tied to).
type Coin struct {
	ID       int64
	Address  string
	Symbol   string
	Name     string
	VendorID string
	Active   bool
}

type CoinPrice struct {
	CoinID    int64
	Address   string
	PriceUSD  float64
	UpdatedAt time.Time
}
