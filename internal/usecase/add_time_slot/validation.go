package add_time_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if strings.TrimSpace(req.ServiceID) == "" {
		return time.Time{}, "", fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.StartTime) != len(domain.TimeFormat) {
		return time.Time{}, "", fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return date, startTime, nil
}
