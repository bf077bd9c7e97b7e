package domain

// PurchaseQuote is the fee breakdown for converting a currency amount into
// tokens at a given price. Fees are computed from BaseAmount only; they are
// never inverted back out of TotalAmount.
type PurchaseQuote struct {
	BaseAmount   float64
	PlatformFee  float64
	FollowingFee float64
	TotalAmount  float64
	TokenCount   int64
	TokenPrice   float64
}
