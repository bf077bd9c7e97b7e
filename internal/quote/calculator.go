package quote

import (
	"math"
	"strconv"
	"strings"

	"valens/internal/domain"
)

// FeeRates holds the fee fractions applied on top of the base amount.
type FeeRates struct {
	Platform  float64
	Following float64
}

var DefaultFeeRates = FeeRates{Platform: 0.05, Following: 0.05}

// QuoteFromAmount computes the fee breakdown and token count for a base
// currency amount. The following fee is charged only when the purchase also
// establishes a following relationship. tokenPrice must be strictly positive;
// otherwise the quote is unavailable rather than a misleading zero.
func QuoteFromAmount(baseAmount, tokenPrice float64, fees FeeRates, includeFollowingFee bool) (domain.PurchaseQuote, error) {
	if tokenPrice <= 0 {
		return domain.PurchaseQuote{}, domain.ErrPriceUnavailable
	}
	if baseAmount < 0 {
		baseAmount = 0
	}

	platformFee := baseAmount * fees.Platform
	followingFee := 0.0
	if includeFollowingFee {
		followingFee = baseAmount * fees.Following
	}

	return domain.PurchaseQuote{
		BaseAmount:   baseAmount,
		PlatformFee:  platformFee,
		FollowingFee: followingFee,
		TotalAmount:  baseAmount + platformFee + followingFee,
		TokenCount:   tokenCountFor(baseAmount, tokenPrice),
		TokenPrice:   tokenPrice,
	}, nil
}

// AmountFromTokenCount is the reverse conversion. It deliberately does not
// re-apply fees: fees are a function of the base amount only, so inverting a
// fee-inclusive total would drift against QuoteFromAmount.
func AmountFromTokenCount(tokenCount int64, tokenPrice float64) float64 {
	if tokenCount <= 0 {
		return 0
	}
	return float64(tokenCount) * tokenPrice
}

func tokenCountFor(baseAmount, tokenPrice float64) int64 {
	n := int64(math.Floor(baseAmount / tokenPrice))
	if n < 0 {
		return 0
	}
	return n
}

// ParseAmount parses free-form amount text. Non-numeric, empty and negative
// input all coerce to 0; the caller keeps the raw text for display.
func ParseAmount(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FormatAmount renders a derived amount back into field text using the
// shortest representation that round-trips.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
