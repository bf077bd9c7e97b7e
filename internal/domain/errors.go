package domain

import "errors"

var (
	ErrCoinNotFound       = errors.New("coin not found")
	ErrPriceNotFound      = errors.New("price not found")
	ErrPricePending       = errors.New("price refresh pending")
	ErrPriceUnavailable   = errors.New("token price unavailable")
	ErrRefreshNotFound    = errors.New("price refresh not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAmountTooSmall     = errors.New("amount too small for a single token")
	ErrInvalidTokenAmount = errors.New("token amount must be a positive integer")
)
