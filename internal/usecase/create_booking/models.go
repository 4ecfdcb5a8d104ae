package create_booking

import (
	"time"

	"github.com/m04kA/BookingHub/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string // ID пользователя из токена
	ServiceID string // ID услуги
	Date      string // Дата бронирования YYYY-MM-DD
	StartTime string // Время начала слота HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	UserID    string
	ServiceID string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string

	// Денормализованные данные
	ServiceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
