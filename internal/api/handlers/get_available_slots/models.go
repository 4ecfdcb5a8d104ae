package get_available_slots

import (
	"github.com/m04kA/BookingHub/internal/domain"
	getAvailableSlots "github.com/m04kA/BookingHub/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID string          `json:"serviceId"`
	Date      string          `json:"date"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      domain.FormatDate(resp.Date),
		Slots:     slots,
	}
}
