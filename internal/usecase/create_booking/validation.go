package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// normalizeRequest обрезает пробелы в текстовых полях
func normalizeRequest(req *Request) {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.Notes = strings.TrimSpace(req.Notes)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if !req.Date.IsValid() {
		return fmt.Errorf("%w: date must be in %s format", ErrInvalidInput, domain.DateFormat)
	}

	if !req.Time.IsValid() {
		return fmt.Errorf("%w: time must be in %s format", ErrInvalidInput, domain.TimeFormat)
	}

	return nil
}
