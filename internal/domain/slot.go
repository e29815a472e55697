package domain

import "github.com/lenslot/LS-BookingService/pkg/types"

// Slot a derived bookable half-hour window on a given date.
// Never persisted; recomputed from the schedule on every request.
type Slot struct {
	StartTime types.ClockTime
	EndTime   types.ClockTime
}

// Overlaps returns true if the slot strictly overlaps the [start, end)
// interval. Touching boundaries do not count as overlap.
func (s Slot) Overlaps(start, end types.ClockTime) bool {
	return start.IsBefore(s.EndTime) && end.IsAfter(s.StartTime)
}
