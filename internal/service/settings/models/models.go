package models

import "github.com/m04kA/SMC-LuxeBook/internal/domain"

// SettingsRequest запрос на замену настроек целиком
type SettingsRequest struct {
	Name      string `json:"name"`
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "20:00"
}

// SettingsResponse ответ с настройками заведения
type SettingsResponse struct {
	Name      string `json:"name"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	// HasBookableHours false, если openTime не раньше closeTime (слотов не будет)
	HasBookableHours bool `json:"hasBookableHours"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.BusinessSettings) *SettingsResponse {
	return &SettingsResponse{
		Name:             s.Name,
		OpenTime:         s.OpenTime.String(),
		CloseTime:        s.CloseTime.String(),
		HasBookableHours: s.HasBookableHours(),
	}
}
