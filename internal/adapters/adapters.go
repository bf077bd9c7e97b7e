package adapters

import (
	"context"
	"valens/internal/domain"

	"github.com/google/uuid"
)

type PricingClient interface {
	GetPriceUSD(ctx context.Context, address string) (float64, error)
}

type CheckoutClient interface {
	CreatePurchaseSession(ctx context.Context, payload domain.PurchasePayload) (string, error)
	SubmitSell(ctx context.Context, payload domain.SellPayload) error
}

type CoinRepository interface {
	List(ctx context.Context) ([]domain.Coin, error)
	GetByAddress(ctx context.Context, address string) (domain.Coin, error)
	GetPrice(ctx context.Context, address string) (domain.CoinPrice, error)
}

type PriceRefreshRepository interface {
	ScheduleNewOrGetExisting(ctx context.Context, address string) (uuid.UUID, error)
	GetByRefreshID(ctx context.Context, refreshID uuid.UUID) (domain.CoinPrice, domain.PriceRefreshStatus, error)
	GetPending(ctx context.Context) ([]domain.PendingPriceRefresh, error)
	ApplyRefreshes(ctx context.Context, refreshes []domain.AppliedPriceRefresh) error
}

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) error
	SetCheckoutURL(ctx context.Context, orderID uuid.UUID, url string) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
}

// PriceProvider is the read side of the coin service: cache-aware price
// lookup that schedules a refresh when no price is known yet.
type PriceProvider interface {
	GetPrice(ctx context.Context, address string) (domain.CoinPrice, error)
}

type PriceCache interface {
	GetPrice(address string) (domain.CoinPrice, bool)
	SetPrice(address string, price domain.CoinPrice)
	GetRefreshID(address string) (uuid.UUID, bool)
	SetRefreshID(address string, refreshID uuid.UUID)
	CleanBatch(addresses []string)
}
