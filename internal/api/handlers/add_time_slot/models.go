package add_time_slot

import (
	"github.com/m04kA/BookingHub/internal/domain"
	addTimeSlot "github.com/m04kA/BookingHub/internal/usecase/add_time_slot"
)

// AddTimeSlotRequest HTTP request model
type AddTimeSlotRequest struct {
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"startTime" validate:"required,clock"`
}

// TimeSlotResponse HTTP response model
type TimeSlotResponse struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddTimeSlotRequest) ToUseCaseRequest(serviceID string) *addTimeSlot.Request {
	return &addTimeSlot.Request{
		ServiceID: serviceID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addTimeSlot.Response) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        resp.ID,
		ServiceID: resp.ServiceID,
		Date:      domain.FormatDate(resp.Date),
		StartTime: resp.StartTime.String(),
		Available: resp.Available,
	}
}
