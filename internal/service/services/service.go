package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	serviceRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/service"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
)

// Service сервис администрирования каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	describer   Describer
	logger      Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(serviceRepo ServiceRepository, describer Describer, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		describer:   describer,
		logger:      logger,
	}
}

// List возвращает каталог услуг
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.load(ctx, "List")
	if err != nil {
		return nil, err
	}

	return models.FromDomainServiceList(services), nil
}

// Create добавляет услугу с новым ID; без картинки подставляется заглушка
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	if err := validateServiceRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	id := uuid.NewString()
	service, err := req.ToDomainService(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if service.ImageURL == "" {
		service.ImageURL = models.PlaceholderImageURL(id)
	}

	if err := s.serviceRepo.Add(ctx, service); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%s name=%q created", id, service.Name)
	return models.FromDomainService(&service), nil
}

// Update заменяет запись услуги целиком
func (s *Service) Update(ctx context.Context, id string, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	if err := validateServiceRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, err
	}

	service, err := req.ToDomainService(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.serviceRepo.Replace(ctx, service); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%s updated", id)
	return models.FromDomainService(&service), nil
}

// Delete удаляет услугу. Существующие записи сохраняют снимок названия и цены.
// Удаление отсутствующей услуги не считается ошибкой.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) (*models.ServiceListResponse, error) {
	if !confirmed {
		s.logger.Warn("Delete: deletion of service id=%s was not confirmed", id)
		return nil, ErrConfirmationRequired
	}

	remaining, err := s.serviceRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Delete: repository error: %v", err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%s removed, %d services left", id, len(remaining))
	return models.FromDomainServiceList(remaining), nil
}

// GenerateDescription запрашивает описание у генератора; генератор никогда не возвращает ошибку
func (s *Service) GenerateDescription(ctx context.Context, req *models.DescribeRequest) (*models.DescriptionResponse, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	category, err := domain.ParseServiceCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	description := s.describer.DescribeService(ctx, strings.TrimSpace(req.Name), category)
	return &models.DescriptionResponse{Description: description}, nil
}

func (s *Service) load(ctx context.Context, op string) ([]domain.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return services, nil
}
