package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

type OrderStatus string

const (
	OrderPending         OrderStatus = "pending"
	OrderCheckoutCreated OrderStatus = "checkout_created"
	OrderSubmitted       OrderStatus = "submitted"
	OrderFailed          OrderStatus = "failed"
)

type Order struct {
	OrderID     uuid.UUID
	Side        OrderSide
	VendorID    string
	CoinAddress string
	BaseAmount  float64
	PlatformFee float64
	VendorFee   float64
	TotalAmount float64
	TokenCount  int64
	TokenPrice  float64
	Status      OrderStatus
	CheckoutURL string
	CreatedAt   time.Time
}

// PurchasePayload is the body sent to the checkout service. Field names are
// fixed by its API: "amount" is the total charged, "restAmount" the portion
// converted to tokens, "vendorFee" the following fee.
type PurchasePayload struct {
	Amount             float64 `json:"amount"`
	PlatformFee        float64 `json:"platformFee"`
	VendorFee          float64 `json:"vendorFee"`
	RestAmount         float64 `json:"restAmount"`
	TokensReceived     int64   `json:"tokensReceived"`
	PurchaseTokenPrice float64 `json:"purchaseTokenPrice"`
	VendorID           string  `json:"vendorId"`
}

// SellPayload mirrors the checkout service's sell endpoint, which takes the
// token amount as a JSON-encoded integer string.
type SellPayload struct {
	AmountTokens string `json:"amountTokens"`
	TokenAddress string `json:"tokenAddress"`
}
