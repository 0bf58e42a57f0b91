package economy

import "fmt"

// ErrPriceNotTracked indicates a price query for an (asset, good) pair with
// no price field. Queries return zero alongside this error; the surrounding
// loop is expected to continue.
type ErrPriceNotTracked struct {
	Commodity string
	Planet    string
}

func (e *ErrPriceNotTracked) Error() string {
	return fmt.Sprintf("price for commodity %q not tracked at %q", e.Commodity, e.Planet)
}

// ErrBadPriceField indicates the initializer derived parameters that violate
// the field invariants, which means malformed input attributes.
type ErrBadPriceField struct {
	Commodity string
	Planet    string
	Cause     error
}

func (e *ErrBadPriceField) Error() string {
	return fmt.Sprintf("derived price field for %q at %q is invalid: %v", e.Commodity, e.Planet, e.Cause)
}

func (e *ErrBadPriceField) Unwrap() error {
	return e.Cause
}
