package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// ServiceRequest черновик услуги из формы администратора
type ServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// DescribeRequest запрос на генерацию описания
type DescribeRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	CategoryLabel   string  `json:"categoryLabel"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// DescriptionResponse ответ со сгенерированным описанием
type DescriptionResponse struct {
	Description string `json:"description"`
}

// ToDomainService собирает domain модель; категория разбирается без учета регистра
func (r *ServiceRequest) ToDomainService(id string) (domain.Service, error) {
	category, err := domain.ParseServiceCategory(r.Category)
	if err != nil {
		return domain.Service{}, err
	}

	return domain.Service{
		ID:              id,
		Name:            strings.TrimSpace(r.Name),
		Description:     strings.TrimSpace(r.Description),
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Category:        category,
		ImageURL:        strings.TrimSpace(r.ImageURL),
	}, nil
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        string(s.Category),
		CategoryLabel:   s.Category.Label(),
		ImageURL:        s.ImageURL,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for i := range services {
		resp.Services = append(resp.Services, *FromDomainService(&services[i]))
	}

	return resp
}

// PlaceholderImageURL возвращает стоковую картинку для услуги без изображения
func PlaceholderImageURL(id string) string {
	return fmt.Sprintf(domain.PlaceholderImageURLFormat, id)
}
