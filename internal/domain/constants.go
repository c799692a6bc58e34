package domain

import "time"

// Slot generation
const (
	SlotStepMinutes = 30
)

// Persisted collection keys
const (
	KeyServices     = "luxebook_services"
	KeyAppointments = "luxebook_appointments"
	KeySettings     = "luxebook_settings"
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
	MaxServiceNameLength  = 200
	DefaultSubmitDelay    = 800 * time.Millisecond
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PlaceholderImageURLFormat builds the stock image for services created without one
const PlaceholderImageURLFormat = "https://picsum.photos/400/300?random=%s"
