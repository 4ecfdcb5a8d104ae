package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/pkg/types"
)

// validatedRequest разобранные значения запроса
type validatedRequest struct {
	date      time.Time
	startTime types.TimeString
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*validatedRequest, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Время начала должно быть строго HH:MM
	if len(req.StartTime) != len(domain.TimeFormat) {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return &validatedRequest{date: date, startTime: startTime}, nil
}
