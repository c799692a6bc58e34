package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
)

// Service сервис администрирования записей
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает все записи, новые сверху
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(models.SortNewestFirst(appointments)), nil
}

// Confirm подтверждает запись в статусе pending и возвращает перечитанный список
func (s *Service) Confirm(ctx context.Context, id string) (*models.AppointmentListResponse, error) {
	return s.changeStatus(ctx, "Confirm", id, domain.StatusConfirmed)
}

// Cancel отменяет запись в статусе pending или confirmed и возвращает перечитанный список
func (s *Service) Cancel(ctx context.Context, id string) (*models.AppointmentListResponse, error) {
	return s.changeStatus(ctx, "Cancel", id, domain.StatusCancelled)
}

// Delete удаляет запись в любом статусе. Без confirmed=true ничего не меняется.
// Удаление отсутствующей записи не считается ошибкой.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) (*models.AppointmentListResponse, error) {
	if !confirmed {
		s.logger.Warn("Delete: deletion of appointment id=%s was not confirmed", id)
		return nil, ErrConfirmationRequired
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%s deleted", id)
	return s.List(ctx)
}

func (s *Service) changeStatus(ctx context.Context, op, id string, status domain.AppointmentStatus) (*models.AppointmentListResponse, error) {
	s.logger.Info("%s: updating appointment id=%s to status=%s", op, id, status)

	// Проверка перехода и запись выполняются атомарно в репозитории
	_, err := s.appointmentRepo.Modify(ctx, id, func(appointment *domain.Appointment) error {
		if !canMoveTo(appointment, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, status)
		}
		appointment.Status = status
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("%s: appointment id=%s: %v", op, id, err)
			return nil, err
		default:
			s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
			return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}

	s.logger.Info("%s: appointment id=%s is now %s", op, id, status)
	return s.List(ctx)
}

func canMoveTo(appointment *domain.Appointment, status domain.AppointmentStatus) bool {
	switch status {
	case domain.StatusConfirmed:
		return appointment.CanBeConfirmed()
	case domain.StatusCancelled:
		return appointment.CanBeCancelled()
	default:
		return false
	}
}
