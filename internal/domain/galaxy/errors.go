package galaxy

import "fmt"

// ErrUnknownSystem indicates a name with no system in the universe
type ErrUnknownSystem struct {
	Name string
}

func (e *ErrUnknownSystem) Error() string {
	return fmt.Sprintf("system %q not found in universe", e.Name)
}

// ErrInvalidSystem indicates a system that cannot be registered
type ErrInvalidSystem struct {
	Name   string
	Reason string
}

func (e *ErrInvalidSystem) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid system: %s", e.Reason)
	}
	return fmt.Sprintf("invalid system %q: %s", e.Name, e.Reason)
}

// ErrUnknownPlanet indicates a planet name with no asset in a system
type ErrUnknownPlanet struct {
	System string
	Name   string
}

func (e *ErrUnknownPlanet) Error() string {
	return fmt.Sprintf("planet %q not found in system %q", e.Name, e.System)
}
