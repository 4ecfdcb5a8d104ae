package create_booking

import (
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
	createBooking "github.com/m04kA/BookingHub/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Пользователь берётся из токена, а не из тела запроса
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Date      string `json:"date" validate:"required,date"`       // "2025-10-15"
	StartTime string `json:"startTime" validate:"required,clock"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		Date:        domain.FormatDate(resp.Date),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
