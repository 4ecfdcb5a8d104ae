package get_available_slots

import (
	"time"

	"github.com/m04kA/BookingHub/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	ServiceID string // ID услуги
	Date      string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со свободными слотами
type Response struct {
	ServiceID string
	Date      time.Time
	Slots     []Slot // Отсортированы по времени начала
}

// Slot свободный слот
type Slot struct {
	ID        string
	StartTime types.TimeString
}
