package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
)

// validateServiceRequest проверяет обязательные поля формы
func validateServiceRequest(req *models.ServiceRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if _, err := domain.ParseServiceCategory(req.Category); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
