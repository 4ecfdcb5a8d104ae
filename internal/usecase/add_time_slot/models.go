package add_time_slot

import (
	"time"

	"github.com/m04kA/BookingHub/pkg/types"
)

// Request модель запроса на добавление слота
type Request struct {
	ServiceID string
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
}

// Response созданный слот
type Response struct {
	ID        string
	ServiceID string
	Date      time.Time
	StartTime types.TimeString
	Available bool
}
