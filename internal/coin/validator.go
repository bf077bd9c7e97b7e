package coin

import (
	"errors"
	"regexp"
)

var (
	ErrAddressRequired = errors.New("token address is required")
	ErrAddressInvalid  = errors.New("token address must be 0x followed by 40 hex characters")
)

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type AddressValidator struct{}

func (v *AddressValidator) ValidateAddress(address string) error {
	if address == "" {
		return ErrAddressRequired
	}
	if !addressRe.MatchString(address) {
		return ErrAddressInvalid
	}
	return nil
}

func NewAddressValidator() *AddressValidator {
	return &AddressValidator{}
}
