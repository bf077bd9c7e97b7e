package quote

import (
	"sync"
	"time"

	"valens/internal/domain"
)

type ActiveInput string

const (
	InputAmount ActiveInput = "amount"
	InputTokens ActiveInput = "tokens"
)

type reconcilerState int

const (
	stateIdle reconcilerState = iota
	stateDerivingFromAmount
	stateDerivingFromTokens
)

const defaultSettleDelay = 50 * time.Millisecond

// ScheduleFunc delays a callback; the default uses time.AfterFunc. Tests
// inject a synchronous one so they control exactly when the guard clears.
type ScheduleFunc func(d time.Duration, fn func())

// Reconciler keeps a free-text amount field and an integer token-count field
// numerically consistent with the current token price. Whichever field the
// user edited last is the source; the other one is derived. A derived write
// must not itself be treated as an edit that would derive the first field
// again, so each derivation enters a guarded state that only a settle for the
// same generation can clear. The generation counter makes a stale scheduled
// clear from an older cycle a no-op.
type Reconciler struct {
	mu sync.Mutex

	fees                FeeRates
	includeFollowingFee bool
	settleDelay         time.Duration
	schedule            ScheduleFunc

	tokenPrice float64
	amountText string
	tokenCount int64
	active     ActiveInput
	state      reconcilerState
	generation uint64
}

type ReconcilerConfig struct {
	Fees                FeeRates
	IncludeFollowingFee bool
	SettleDelay         time.Duration
	Schedule            ScheduleFunc
}

func NewReconciler(cfg ReconcilerConfig) *Reconciler {
	r := &Reconciler{
		fees:                cfg.Fees,
		includeFollowingFee: cfg.IncludeFollowingFee,
		settleDelay:         cfg.SettleDelay,
		schedule:            cfg.Schedule,
		active:              InputAmount,
	}
	if r.fees == (FeeRates{}) {
		r.fees = DefaultFeeRates
	}
	if r.settleDelay <= 0 {
		r.settleDelay = defaultSettleDelay
	}
	if r.schedule == nil {
		r.schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	return r
}

// SetTokenPrice records the externally fetched price. The reconciler never
// mutates it and derives nothing until it is strictly positive.
func (r *Reconciler) SetTokenPrice(price float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokenPrice = price
}

// SetAmount records a user edit of the amount field. The raw text is kept
// verbatim even when it does not parse; edits are accepted while a derivation
// guard is still armed.
func (r *Reconciler) SetAmount(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.amountText = text
	r.active = InputAmount
}

// SetTokenCount records a user edit of the token-count field, clamped at 0.
func (r *Reconciler) SetTokenCount(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 0 {
		n = 0
	}
	r.tokenCount = n
	r.active = InputTokens
}

func (r *Reconciler) IncrementTokens() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokenCount++
	r.active = InputTokens
}

// DecrementTokens clamps at 0; a negative token count is never stored.
func (r *Reconciler) DecrementTokens() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tokenCount > 0 {
		r.tokenCount--
	}
	r.active = InputTokens
}

// Settle runs one derivation pass. It does nothing while a previous derived
// write has not settled yet, or while no usable price is known.
func (r *Reconciler) Settle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateIdle || r.tokenPrice <= 0 {
		return
	}

	switch r.active {
	case InputAmount:
		derived := tokenCountFor(ParseAmount(r.amountText), r.tokenPrice)
		if derived == r.tokenCount {
			return
		}
		r.state = stateDerivingFromAmount
		r.generation++
		r.tokenCount = derived
		r.armClear(r.generation)
	case InputTokens:
		derived := FormatAmount(AmountFromTokenCount(r.tokenCount, r.tokenPrice))
		if derived == r.amountText {
			return
		}
		r.state = stateDerivingFromTokens
		r.generation++
		r.amountText = derived
		r.armClear(r.generation)
	}
}

func (r *Reconciler) armClear(gen uint64) {
	r.schedule(r.settleDelay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.generation {
			return
		}
		r.state = stateIdle
	})
}

func (r *Reconciler) Amount() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.amountText
}

func (r *Reconciler) TokenCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tokenCount
}

func (r *Reconciler) Active() ActiveInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Quote returns the full fee breakdown for the current amount text.
func (r *Reconciler) Quote() (domain.PurchaseQuote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return QuoteFromAmount(ParseAmount(r.amountText), r.tokenPrice, r.fees, r.includeFollowingFee)
}
