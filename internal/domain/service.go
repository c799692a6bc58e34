package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ServiceCategory is the closed set of service kinds offered by a venue
type ServiceCategory string

const (
	CategorySpa        ServiceCategory = "spa"
	CategoryNails      ServiceCategory = "nails"
	CategoryMassage    ServiceCategory = "massage"
	CategoryRestaurant ServiceCategory = "restaurant"
	CategoryOther      ServiceCategory = "other"
)

// ServiceCategories lists every category in display order
var ServiceCategories = []ServiceCategory{
	CategorySpa,
	CategoryNails,
	CategoryMassage,
	CategoryRestaurant,
	CategoryOther,
}

// ParseServiceCategory parses a category case-insensitively
func ParseServiceCategory(s string) (ServiceCategory, error) {
	normalized := ServiceCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, category := range ServiceCategories {
		if category == normalized {
			return category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// UnmarshalJSON rejects values outside the closed category set
func (c *ServiceCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseServiceCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Label returns the human readable category name used in prompts
func (c ServiceCategory) Label() string {
	switch c {
	case CategorySpa:
		return "Spa"
	case CategoryNails:
		return "Nails"
	case CategoryMassage:
		return "Massage"
	case CategoryRestaurant:
		return "Restaurant"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// Service represents a bookable offering of the venue
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           float64         `json:"price"`
	Category        ServiceCategory `json:"category"`
	ImageURL        string          `json:"imageUrl,omitempty"`
}
