package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BookingHub/internal/domain"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	"github.com/m04kA/BookingHub/internal/service/catalog/models"
)

const maxDurationMinutes = 24 * 60

// Service сервис каталога услуг
type Service struct {
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// List возвращает услуги с фильтром по категории и поиском
func (s *Service) List(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d services (category=%q, search=%q)", len(services), req.Category, req.Search)
	return models.FromDomainServiceList(services), nil
}

// Categories возвращает категории в порядке первого появления
func (s *Service) Categories(ctx context.Context) (*models.CategoriesResponse, error) {
	categories, err := s.serviceRepo.Categories(ctx)
	if err != nil {
		s.logger.Error("Categories: repository error: %v", err)
		return nil, fmt.Errorf("%w: Categories - repository error: %v", ErrInternal, err)
	}

	if categories == nil {
		categories = []string{}
	}
	return &models.CategoriesResponse{Categories: categories}, nil
}

// Create добавляет услугу в каталог (только для администратора)
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: adding service name=%q, category=%q", req.Name, req.Category)

	// 1. Валидируем входные данные
	if err := validateServiceData(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем услугу
	service := &domain.Service{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Category:        strings.TrimSpace(req.Category),
		ImageURL:        req.ImageURL,
		CreatedAt:       s.timeProvider.Now(),
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceAlreadyExists) {
			return nil, ErrServiceAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%s created", created.ID)
	return models.FromDomainService(created), nil
}

// validateServiceData валидирует параметры услуги
func validateServiceData(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if req.Category == domain.CategoryAll {
		return fmt.Errorf("%w: category %q is reserved", ErrInvalidInput, domain.CategoryAll)
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes > maxDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, maxDurationMinutes)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}
