package cancel_booking

import (
	"context"

	"github.com/m04kA/BookingHub/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID string, caller models.Caller) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
