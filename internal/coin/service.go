package coin

import (
	"context"
	"errors"
	"fmt"
	"valens/internal/adapters"
	"valens/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	coins     adapters.CoinRepository
	refreshes adapters.PriceRefreshRepository
	cache     adapters.PriceCache
}

func (s *Service) ListCoins(ctx context.Context) ([]domain.Coin, error) {
	return s.coins.List(ctx)
}

// GetPrice serves the last known price, cache first. A known coin without a
// price yet gets a refresh scheduled and reports pending instead of a bogus
// zero.
func (s *Service) GetPrice(ctx context.Context, address string) (domain.CoinPrice, error) {
	if price, ok := s.cache.GetPrice(address); ok {
		return price, nil
	}

	price, err := s.coins.GetPrice(ctx, address)
	if err != nil {
		if !errors.Is(err, domain.ErrPriceNotFound) {
			return domain.CoinPrice{}, err
		}
		if _, coinErr := s.coins.GetByAddress(ctx, address); coinErr != nil {
			return domain.CoinPrice{}, coinErr
		}
		if _, schedErr := s.ScheduleRefresh(ctx, address); schedErr != nil {
			return domain.CoinPrice{}, schedErr
		}
		return domain.CoinPrice{}, domain.ErrPricePending
	}

	s.cache.SetPrice(address, price)
	return price, nil
}

// ScheduleRefresh is idempotent per coin: repeated requests while a refresh
// is pending return the same handle. The cache absorbs repeat calls between
// scheduler runs.
func (s *Service) ScheduleRefresh(ctx context.Context, address string) (uuid.UUID, error) {
	if refreshID, ok := s.cache.GetRefreshID(address); ok {
		return refreshID, nil
	}

	refreshID, err := s.refreshes.ScheduleNewOrGetExisting(ctx, address)
	if err != nil {
		return uuid.Nil, err
	}
	s.cache.SetRefreshID(address, refreshID)
	return refreshID, nil
}

func (s *Service) GetRefresh(ctx context.Context, refreshID uuid.UUID) (RefreshView, error) {
	price, status, err := s.refreshes.GetByRefreshID(ctx, refreshID)
	if err != nil {
		return RefreshView{}, err
	}

	switch status {
	case domain.RefreshApplied:
		value := price.PriceUSD
		updatedAt := price.UpdatedAt
		return RefreshView{Address: price.Address, Status: status, PriceUSD: &value, UpdatedAt: &updatedAt}, nil
	case domain.RefreshPending:
		return RefreshView{Address: price.Address, Status: status}, nil
	default:
		return RefreshView{}, fmt.Errorf("unknown price refresh status: %q", status)
	}
}

func NewService(coins adapters.CoinRepository, refreshes adapters.PriceRefreshRepository, cache adapters.PriceCache) *Service {
	return &Service{coins: coins, refreshes: refreshes, cache: cache}
}
