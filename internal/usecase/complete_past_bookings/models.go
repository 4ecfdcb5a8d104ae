package complete_past_bookings

// Response результат прохода
type Response struct {
	CompletedIDs []string // ID бронирований, переведенных в completed
}
