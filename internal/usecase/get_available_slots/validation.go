package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BookingHub/internal/domain"
)

// validateRequest валидирует входные данные и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	if strings.TrimSpace(req.ServiceID) == "" {
		return time.Time{}, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}
