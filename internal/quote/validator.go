package quote

import "errors"

var (
	ErrAmountRequired     = errors.New("amount is required")
	ErrAmountTooLong      = errors.New("amount text exceeds 32 characters")
	ErrNegativeTokenCount = errors.New("token count must not be negative")
)

const maxAmountTextLen = 32

type InputValidator struct{}

func (v *InputValidator) ValidateAmountText(text string) error {
	if text == "" {
		return ErrAmountRequired
	}
	if len(text) > maxAmountTextLen {
		return ErrAmountTooLong
	}
	return nil
}

func (v *InputValidator) ValidateTokenCount(n int64) error {
	if n < 0 {
		return ErrNegativeTokenCount
	}
	return nil
}

func NewInputValidator() *InputValidator {
	return &InputValidator{}
}
