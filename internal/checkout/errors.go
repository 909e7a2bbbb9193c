package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart blocks submission before any network call is made.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrCheckoutInFlight rejects a submission while another one for the
	// same session is still running. Attempts are rejected, never queued.
	ErrCheckoutInFlight = errors.New("checkout already in progress")
)

// ValidationError carries the per-field messages for an invalid shipping
// form. The cart is untouched when it is returned.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("shipping information is invalid (%d field(s))", len(e.Fields))
}

// ServiceError wraps any payment-session failure: transport errors,
// non-success responses, and responses without a redirect URL. Cart and
// form values are preserved so the shopper can retry.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("checkout failed: %v", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
