package signature

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedQuotePayload    = errors.New("malformed quote payload")
	ErrUnsupportedOrderTopology = errors.New("unsupported order topology")
)

// MalformedPayloadError reports a to-sign field that could not be canonicalized.
type MalformedPayloadError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: field %s with value %q: %s", ErrMalformedQuotePayload, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: field %s with value %q", ErrMalformedQuotePayload, e.Field, e.Value)
}

func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedQuotePayload
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// UnsupportedTopologyError returns an error for an order type outside the known set.
func UnsupportedTopologyError(orderType string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedOrderTopology, orderType)
}
