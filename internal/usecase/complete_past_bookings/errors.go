package complete_past_bookings

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_past_bookings: internal error")
)
