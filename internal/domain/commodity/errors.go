package commodity

import "fmt"

// ErrUnknownCommodity indicates a name with no catalogue entry
type ErrUnknownCommodity struct {
	Name string
}

func (e *ErrUnknownCommodity) Error() string {
	return fmt.Sprintf("commodity %q not found in catalog", e.Name)
}

// ErrInvalidCommodity indicates a catalogue entry that cannot be registered
type ErrInvalidCommodity struct {
	Name   string
	Reason string
}

func (e *ErrInvalidCommodity) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid commodity: %s", e.Reason)
	}
	return fmt.Sprintf("invalid commodity %q: %s", e.Name, e.Reason)
}
