package domain

import "github.com/m04kA/SMC-LuxeBook/pkg/types"

// BusinessSettings represents the venue display name and its daily opening hours.
// No ordering between OpenTime and CloseTime is enforced: an inverted range yields no slots.
type BusinessSettings struct {
	Name      string           `json:"name"`
	OpenTime  types.TimeString `json:"openTime"`
	CloseTime types.TimeString `json:"closeTime"`
}

// HasBookableHours returns true if the opening range can produce at least one slot
func (s *BusinessSettings) HasBookableHours() bool {
	return s.OpenTime.IsBefore(s.CloseTime)
}
