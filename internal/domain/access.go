package domain

// Partition splits events into those the viewer may access and those that stay locked.
// Input order is preserved within each result. Both results are non-nil.
func Partition(events []*Event, viewer Tier) (accessible, locked []*Event) {
	accessible = make([]*Event, 0, len(events))
	locked = make([]*Event, 0)
	for _, e := range events {
		if viewer.Allows(e.Tier) {
			accessible = append(accessible, e)
		} else {
			locked = append(locked, e)
		}
	}
	return accessible, locked
}

// TierListing is the partitioned view of the event store for one viewer tier.
// swagger:model TierListing
type TierListing struct {
	Tier       Tier     `json:"tier"`
	Accessible []*Event `json:"accessible"`
	Locked     []*Event `json:"locked"`
}

// NewTierListing partitions events for the viewer.
func NewTierListing(events []*Event, viewer Tier) *TierListing {
	accessible, locked := Partition(events, viewer)
	return &TierListing{
		Tier:       viewer,
		Accessible: accessible,
		Locked:     locked,
	}
}
