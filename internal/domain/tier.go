package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Tier is a membership level controlling event visibility.
// swagger:model Tier
type Tier string

const (
	TierFree     Tier = "free"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// DefaultViewerTier is the tier a viewer starts with when none is selected.
const DefaultViewerTier = TierFree

var orderedTiers = []Tier{TierFree, TierSilver, TierGold, TierPlatinum}

var tierRanks = map[Tier]int{
	TierFree:     0,
	TierSilver:   1,
	TierGold:     2,
	TierPlatinum: 3,
}

var tierDescriptions = map[Tier]string{
	TierFree:     "Access to basic community events",
	TierSilver:   "Workshops and training sessions",
	TierGold:     "VIP events and masterclasses",
	TierPlatinum: "Exclusive summits and retreats",
}

// AllTiers returns every tier, lowest rank first. The returned slice is a copy.
func AllTiers() []Tier {
	out := make([]Tier, len(orderedTiers))
	copy(out, orderedTiers)
	return out
}

// ParseTier converts a raw value (case-insensitive, surrounding spaces ignored) into a Tier.
// Anything outside the enumeration yields ErrInvalidTier.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}

// Valid reports whether t is one of the enumerated tiers.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// Rank returns the position of t in the total order (free=0 ... platinum=3), or -1 for an invalid tier.
func (t Tier) Rank() int {
	if r, ok := tierRanks[t]; ok {
		return r
	}
	return -1
}

// Allows reports whether a viewer holding t may access content that requires the given tier.
func (t Tier) Allows(required Tier) bool {
	return required.Rank() <= t.Rank()
}

// Label returns the display name, e.g. "Gold".
func (t Tier) Label() string {
	if !t.Valid() {
		return string(t)
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Description returns the short marketing copy for the tier.
func (t Tier) Description() string {
	return tierDescriptions[t]
}

func (t Tier) String() string {
	return string(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, string(t))
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are rejected.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner.
func (t *Tier) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return fmt.Errorf("%w: null", ErrInvalidTier)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTier, src)
	}
	return t.UnmarshalText([]byte(raw))
}

// Value implements driver.Valuer.
func (t Tier) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, string(t))
	}
	return string(t), nil
}

// TierInfo describes a tier for catalog listings.
// swagger:model TierInfo
type TierInfo struct {
	Tier        Tier   `json:"tier"`
	Rank        int    `json:"rank"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// TierCatalog returns TierInfo for every tier, lowest rank first.
func TierCatalog() []TierInfo {
	out := make([]TierInfo, 0, len(orderedTiers))
	for _, t := range orderedTiers {
		out = append(out, TierInfo{
			Tier:        t,
			Rank:        t.Rank(),
			Label:       t.Label(),
			Description: t.Description(),
		})
	}
	return out
}
