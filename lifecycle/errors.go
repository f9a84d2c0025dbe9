package lifecycle

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadySubmitted = errors.New("quote already submitted")
	ErrQuoteExpired     = errors.New("quote expired")
	ErrOrderFailed      = errors.New("order failed")
	ErrTxReverted       = errors.New("transaction reverted")
	ErrNoExecutor       = errors.New("no transaction executor configured")
	ErrNoSigner         = errors.New("no signer configured")
)

// SigningError is returned when the signer could not sign the order.
type SigningError struct {
	QuoteID string
	Err     error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("failed to sign quote %s: %s", e.QuoteID, e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}
