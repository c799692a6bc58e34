package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/service/settings/models"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// Service сервис настроек заведения
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки (или значения по умолчанию)
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Save заменяет настройки целиком.
// Проверяется только формат; openTime >= closeTime допустимо и просто дает пустой список слотов.
func (s *Service) Save(ctx context.Context, req *models.SettingsRequest) (*models.SettingsResponse, error) {
	settings, err := toDomainSettings(req)
	if err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	if !settings.HasBookableHours() {
		s.logger.Warn("Save: opening hours %s-%s produce no slots", settings.OpenTime, settings.CloseTime)
	}

	s.logger.Info("Save: settings saved, name=%q, hours=%s-%s", settings.Name, settings.OpenTime, settings.CloseTime)
	return models.FromDomainSettings(settings), nil
}

func toDomainSettings(req *models.SettingsRequest) (domain.BusinessSettings, error) {
	if req == nil {
		return domain.BusinessSettings{}, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.BusinessSettings{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	openTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.OpenTime))
	if err != nil {
		return domain.BusinessSettings{}, fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}

	closeTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.CloseTime))
	if err != nil {
		return domain.BusinessSettings{}, fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}

	return domain.BusinessSettings{
		Name:      name,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}, nil
}
