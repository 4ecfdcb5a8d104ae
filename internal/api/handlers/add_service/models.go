package add_service

import (
	"github.com/m04kA/BookingHub/internal/service/catalog/models"
)

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Description     string  `json:"description" validate:"max=2000"`
	DurationMinutes int     `json:"duration" validate:"required,gt=0,lte=1440"`
	Price           float64 `json:"price" validate:"gte=0"`
	Category        string  `json:"category" validate:"required,max=100"`
	ImageURL        string  `json:"image" validate:"omitempty,url"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Category:        r.Category,
		ImageURL:        r.ImageURL,
	}
}
