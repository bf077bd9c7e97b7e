package purchase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"valens/internal/adapters"
	"valens/internal/domain"
	"valens/internal/quote"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service struct {
	coins    adapters.CoinRepository
	prices   adapters.PriceProvider
	orders   adapters.OrderRepository
	checkout adapters.CheckoutClient
	fees     quote.FeeRates
}

type PurchaseRequest struct {
	CoinAddress         string
	AmountText          string
	IncludeFollowingFee bool
}

type SellRequest struct {
	CoinAddress  string
	AmountTokens string // JSON-encoded integer, as the checkout service expects it
}

// Quote computes the purchase breakdown for an amount without committing to
// anything. Client-side derived numbers are never trusted; this is the one
// source of truth the submission path reuses.
func (s *Service) Quote(ctx context.Context, req PurchaseRequest) (domain.PurchaseQuote, error) {
	if _, err := s.coins.GetByAddress(ctx, req.CoinAddress); err != nil {
		return domain.PurchaseQuote{}, err
	}

	price, err := s.prices.GetPrice(ctx, req.CoinAddress)
	if err != nil {
		return domain.PurchaseQuote{}, err
	}

	return quote.QuoteFromAmount(quote.ParseAmount(req.AmountText), price.PriceUSD, s.fees, req.IncludeFollowingFee)
}

// SubmitPurchase re-quotes server-side from the live price, persists the
// order and opens a checkout session. The order is left in its last state on
// failure; there are no automatic retries.
func (s *Service) SubmitPurchase(ctx context.Context, req PurchaseRequest) (domain.Order, error) {
	coin, err := s.coins.GetByAddress(ctx, req.CoinAddress)
	if err != nil {
		return domain.Order{}, err
	}

	price, err := s.prices.GetPrice(ctx, req.CoinAddress)
	if err != nil {
		return domain.Order{}, err
	}

	q, err := quote.QuoteFromAmount(quote.ParseAmount(req.AmountText), price.PriceUSD, s.fees, req.IncludeFollowingFee)
	if err != nil {
		return domain.Order{}, err
	}
	if q.TokenCount == 0 {
		return domain.Order{}, domain.ErrAmountTooSmall
	}

	order := domain.Order{
		OrderID:     uuid.New(),
		Side:        domain.SideBuy,
		VendorID:    coin.VendorID,
		CoinAddress: coin.Address,
		BaseAmount:  q.BaseAmount,
		PlatformFee: q.PlatformFee,
		VendorFee:   q.FollowingFee,
		TotalAmount: q.TotalAmount,
		TokenCount:  q.TokenCount,
		TokenPrice:  q.TokenPrice,
		Status:      domain.OrderPending,
	}
	if err = s.orders.Create(ctx, order); err != nil {
		return domain.Order{}, err
	}

	payload := domain.PurchasePayload{
		Amount:             q.TotalAmount,
		PlatformFee:        q.PlatformFee,
		VendorFee:          q.FollowingFee,
		RestAmount:         q.BaseAmount,
		TokensReceived:     q.TokenCount,
		PurchaseTokenPrice: q.TokenPrice,
		VendorID:           coin.VendorID,
	}
	url, err := s.checkout.CreatePurchaseSession(ctx, payload)
	if err != nil {
		s.markFailed(ctx, order.OrderID)
		return domain.Order{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if err = s.orders.SetCheckoutURL(ctx, order.OrderID, url); err != nil {
		return domain.Order{}, err
	}

	order.Status = domain.OrderCheckoutCreated
	order.CheckoutURL = url
	return order, nil
}

// SubmitSell forwards a sell of n tokens. The sell flow settles against the
// server-held balance, so there is no amount reconciliation here.
func (s *Service) SubmitSell(ctx context.Context, req SellRequest) (domain.Order, error) {
	var tokenCount int64
	if err := json.Unmarshal([]byte(req.AmountTokens), &tokenCount); err != nil || tokenCount <= 0 {
		return domain.Order{}, domain.ErrInvalidTokenAmount
	}

	coin, err := s.coins.GetByAddress(ctx, req.CoinAddress)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		OrderID:     uuid.New(),
		Side:        domain.SideSell,
		VendorID:    coin.VendorID,
		CoinAddress: coin.Address,
		TokenCount:  tokenCount,
		Status:      domain.OrderPending,
	}
	if err = s.orders.Create(ctx, order); err != nil {
		return domain.Order{}, err
	}

	payload := domain.SellPayload{
		AmountTokens: strconv.FormatInt(tokenCount, 10),
		TokenAddress: coin.Address,
	}
	if err = s.checkout.SubmitSell(ctx, payload); err != nil {
		s.markFailed(ctx, order.OrderID)
		return domain.Order{}, fmt.Errorf("failed to submit sell: %w", err)
	}

	if err = s.orders.UpdateStatus(ctx, order.OrderID, domain.OrderSubmitted); err != nil {
		return domain.Order{}, err
	}

	order.Status = domain.OrderSubmitted
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	return s.orders.GetByOrderID(ctx, orderID)
}

func (s *Service) markFailed(ctx context.Context, orderID uuid.UUID) {
	if err := s.orders.UpdateStatus(ctx, orderID, domain.OrderFailed); err != nil {
		logrus.WithError(err).Errorf("Failed to mark order %s as failed", orderID)
	}
}

func NewService(coins adapters.CoinRepository, prices adapters.PriceProvider, orders adapters.OrderRepository, checkout adapters.CheckoutClient, fees quote.FeeRates) *Service {
	if fees == (quote.FeeRates{}) {
		fees = quote.DefaultFeeRates
	}
	return &Service{coins: coins, prices: prices, orders: orders, checkout: checkout, fees: fees}
}
