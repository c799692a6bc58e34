package dashboard

import (
	"context"
	"fmt"
	"time"

	appointmentModels "github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
	"github.com/m04kA/SMC-LuxeBook/internal/service/dashboard/models"
)

// DefaultInsightTimeout ограничение на фоновый запрос инсайта
const DefaultInsightTimeout = 20 * time.Second

// Service сервис панели администратора
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	insight         *insightTracker
	logger          Logger
}

// NewService создает новый экземпляр сервиса панели
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	summarizer TrendSummarizer,
	insightTimeout time.Duration,
	logger Logger,
) *Service {
	if insightTimeout <= 0 {
		insightTimeout = DefaultInsightTimeout
	}

	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		insight:         newInsightTracker(summarizer, insightTimeout, logger),
		logger:          logger,
	}
}

// Load собирает данные панели. Инсайт запрашивается в фоне и не задерживает ответ:
// в ответе будет loading, итог отдает Insight.
func (s *Service) Load(ctx context.Context) (*models.DashboardResponse, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("Load: appointments repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - appointments repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("Load: services repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - services repository error: %v", ErrInternal, err)
	}

	revenue, confirmed := ConfirmedRevenue(appointments, services)

	var insight models.InsightResponse
	if len(appointments) > 0 {
		insight = s.insight.request(ctx, len(appointments), revenue)
	} else {
		insight = s.insight.reset()
	}

	s.logger.Info("Load: %d appointments, %d confirmed, revenue=%.2f, insight=%s",
		len(appointments), confirmed, revenue, insight.Status)

	list := appointmentModels.FromDomainAppointmentList(appointmentModels.SortNewestFirst(appointments))

	return &models.DashboardResponse{
		Appointments:   list.Appointments,
		TotalCount:     len(appointments),
		ConfirmedCount: confirmed,
		Revenue:        revenue,
		Insight:        insight,
	}, nil
}

// Insight возвращает последнее состояние инсайта
func (s *Service) Insight() models.InsightResponse {
	return s.insight.current()
}

// Wait ждет завершения фоновых запросов (тесты, остановка сервиса)
func (s *Service) Wait() {
	s.insight.wait()
}
