package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses is the closed set of appointment statuses
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseAppointmentStatus parses a status case-insensitively ("PENDING" and "pending" are equal)
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	normalized := AppointmentStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, status := range AppointmentStatuses {
		if status == normalized {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// UnmarshalJSON rejects values outside the closed status set
func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAppointmentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsActive returns true if the status still occupies its slot
func (s AppointmentStatus) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// CanTransitionTo reports whether the admin flow may move an appointment from s to next.
// pending -> confirmed | cancelled, confirmed -> cancelled; cancelled is final.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// Appointment represents a customer reservation of a time slot.
// ServiceName and ServicePrice are snapshotted at booking time and never follow later service edits.
type Appointment struct {
	ID            string            `json:"id"`
	ServiceID     string            `json:"serviceId"`
	ServiceName   string            `json:"serviceName"`
	ServicePrice  float64           `json:"servicePrice"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Date          types.DateString  `json:"date"`
	Time          types.TimeString  `json:"time"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     int64             `json:"createdAt"` // unix milliseconds, used for ordering only
}

// IsActive returns true if the appointment blocks its slot
func (a *Appointment) IsActive() bool {
	return a.Status.IsActive()
}

// CanBeConfirmed returns true if the appointment can be approved by the merchant
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status.CanTransitionTo(StatusConfirmed)
}

// CanBeCancelled returns true if the appointment can be cancelled by the merchant
func (a *Appointment) CanBeCancelled() bool {
	return a.Status.CanTransitionTo(StatusCancelled)
}

// CreatedAtTime converts the creation timestamp to time.Time
func (a *Appointment) CreatedAtTime() time.Time {
	return time.UnixMilli(a.CreatedAt)
}
