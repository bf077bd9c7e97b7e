package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"valens/internal/coin"
	"valens/internal/domain"

	"github.com/google/uuid"
)

type Validator interface {
	ValidateAddress(address string) error
}

type Service interface {
	ListCoins(ctx context.Context) ([]domain.Coin, error)
	GetPrice(ctx context.Context, address string) (domain.CoinPrice, error)
	ScheduleRefresh(ctx context.Context, address string) (uuid.UUID, error)
	GetRefresh(ctx context.Context, refreshID uuid.UUID) (coin.RefreshView, error)
}

type Handler struct {
	validator Validator
	service   Service
}

func NewCoinHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
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
