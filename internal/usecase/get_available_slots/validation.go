package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if !req.Date.IsValid() {
		return fmt.Errorf("%w: date must be in %s format", ErrInvalidInput, domain.DateFormat)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом относительно now
func validateDate(date types.DateString, now time.Time) error {
	today := types.NewDateString(now)
	// Формат YYYY-MM-DD сравнивается лексикографически
	if date < today {
		return fmt.Errorf("%w: %s is before %s", ErrInvalidDate, date, today)
	}
	return nil
}

// validateSettings проверяет формат часов работы
func validateSettings(settings domain.BusinessSettings) error {
	if !settings.OpenTime.IsValid() {
		return fmt.Errorf("%w: openTime=%q", ErrInvalidSettings, settings.OpenTime)
	}
	if !settings.CloseTime.IsValid() {
		return fmt.Errorf("%w: closeTime=%q", ErrInvalidSettings, settings.CloseTime)
	}
	return nil
}
