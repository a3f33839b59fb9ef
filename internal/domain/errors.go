package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidTier   = errors.New("invalid tier")
	ErrMalformedTier = errors.New("malformed event tier")
	ErrLocked        = errors.New("event locked for tier")
)

// MalformedTierError is returned by event stores when a stored event carries a tier
// outside the enumeration. It matches ErrMalformedTier with errors.Is.
type MalformedTierError struct {
	EventID string
	Value   string
}

func (e *MalformedTierError) Error() string {
	return fmt.Sprintf("event %s: %s %q", e.EventID, ErrMalformedTier, e.Value)
}

func (e *MalformedTierError) Unwrap() error {
	return ErrMalformedTier
}

// LockedError reports the tier a viewer needs to access an event. It matches ErrLocked.
type LockedError struct {
	EventID  string
	Required Tier
	Viewer   Tier
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("event %s requires %s tier, viewer has %s", e.EventID, e.Required, e.Viewer)
}

func (e *LockedError) Unwrap() error {
	return ErrLocked
}
