package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/BookingHub/pkg/types"
)

// TimeSlot слот времени услуги на конкретный день
// Пара (ServiceID, Date, StartTime) уникальна
type TimeSlot struct {
	ID        string
	ServiceID string
	Date      time.Time
	StartTime types.TimeString
	Available bool
}

// SlotKey ключ слота
type SlotKey struct {
	ServiceID string
	Date      time.Time
	StartTime types.TimeString
}

// ID идентификатор слота вида <serviceID>-<YYYY-MM-DD>-<HH:MM>
func (k SlotKey) ID() string {
	return SlotID(k.ServiceID, k.Date, k.StartTime)
}

// Key ключ слота
func (s *TimeSlot) Key() SlotKey {
	return SlotKey{ServiceID: s.ServiceID, Date: s.Date, StartTime: s.StartTime}
}

// SlotID строит идентификатор слота
func SlotID(serviceID string, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s-%s-%s", serviceID, FormatDate(date), start)
}

// NewTimeSlot создает доступный слот
func NewTimeSlot(serviceID string, date time.Time, start types.TimeString) *TimeSlot {
	date = DateOf(date)
	return &TimeSlot{
		ID:        SlotID(serviceID, date, start),
		ServiceID: serviceID,
		Date:      date,
		StartTime: start,
		Available: true,
	}
}
