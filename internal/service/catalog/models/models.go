package models

import (
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
)

// Request модели

// CreateServiceRequest запрос администратора на добавление услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	ImageURL        string  `json:"image"`
}

// ListServicesRequest фильтр каталога
type ListServicesRequest struct {
	Category string // пусто или "all" - без фильтра
	Search   string // подстрока в названии или описании
}

// ToDomainFilter конвертирует запрос в фильтр репозитория
func (r *ListServicesRequest) ToDomainFilter() domain.ServiceFilter {
	category := r.Category
	if category == domain.CategoryAll {
		category = ""
	}
	return domain.ServiceFilter{Category: category, Search: r.Search}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// CategoriesResponse ответ со списком категорий
type CategoriesResponse struct {
	Categories []string `json:"categories"`
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
		Category:        s.Category,
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if item := FromDomainService(s); item != nil {
			resp.Services = append(resp.Services, *item)
		}
	}

	return resp
}
