package domain

import "github.com/m04kA/SMC-LuxeBook/pkg/types"

// TimeSlot is a derived, never persisted view of one bookable start time
type TimeSlot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}

// FindSlot returns the slot with the given time
func FindSlot(slots []TimeSlot, t types.TimeString) (TimeSlot, bool) {
	for _, slot := range slots {
		if slot.Time == t {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
