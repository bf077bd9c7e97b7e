package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"valens/internal/domain"
	"valens/internal/purchase"

	"github.com/google/uuid"
)

type AddressValidator interface {
	ValidateAddress(address string) error
}

type AmountValidator interface {
	ValidateAmountText(text string) error
}

type Service interface {
	Quote(ctx context.Context, req purchase.PurchaseRequest) (domain.PurchaseQuote, error)
	SubmitPurchase(ctx context.Context, req purchase.PurchaseRequest) (domain.Order, error)
	SubmitSell(ctx context.Context, req purchase.SellRequest) (domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
}

type Handler struct {
	addresses AddressValidator
	amounts   AmountValidator
	service   Service
}

func NewPurchaseHandler(addresses AddressValidator, amounts AmountValidator, service Service) *Handler {
	return &Handler{addresses: addresses, amounts: amounts, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

type OrderResponse struct {
	OrderID     string  `json:"order_id"`
	Side        string  `json:"side"`
	CoinAddress string  `json:"coin_address"`
	BaseAmount  float64 `json:"base_amount"`
	PlatformFee float64 `json:"platform_fee"`
	VendorFee   float64 `json:"vendor_fee"`
	TotalAmount float64 `json:"total_amount"`
	TokenCount  int64   `json:"token_count"`
	TokenPrice  float64 `json:"token_price"`
	Status      string  `json:"status"`
	CheckoutURL string  `json:"checkout_url,omitempty"`
}

func orderResponse(order domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     order.OrderID.String(),
		Side:        string(order.Side),
		CoinAddress: order.CoinAddress,
		BaseAmount:  order.BaseAmount,
		PlatformFee: order.PlatformFee,
		VendorFee:   order.VendorFee,
		TotalAmount: order.TotalAmount,
		TokenCount:  order.TokenCount,
		TokenPrice:  order.TokenPrice,
		Status:      string(order.Status),
		CheckoutURL: order.CheckoutURL,
	}
}
