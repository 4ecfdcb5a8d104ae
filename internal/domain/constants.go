package domain

import (
	"errors"
	"time"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CategoryAll значение фильтра категории без ограничения
const CategoryAll = "all"

// BookingsTab вкладка личного кабинета
type BookingsTab string

const (
	TabAll    BookingsTab = ""
	TabActive BookingsTab = "active"
	TabPast   BookingsTab = "past"
)

// IsValid возвращает true для известных вкладок
func (t BookingsTab) IsValid() bool {
	return t == TabAll || t == TabActive || t == TabPast
}

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// ParseDate парсит дату YYYY-MM-DD в полночь UTC
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateFormat) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate форматирует календарный день
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DateOf календарный день момента t (в его зоне) как полночь UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
