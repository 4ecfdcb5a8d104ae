package add_time_slot

import (
	"context"

	addTimeSlot "github.com/m04kA/BookingHub/internal/usecase/add_time_slot"
)

type AddTimeSlotUseCase interface {
	Execute(ctx context.Context, req *addTimeSlot.Request) (*addTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
