package seed

import "github.com/m04kA/BookingHub/internal/domain"

const (
	firstSlotHour = 8
	lastSlotHour  = 17
)

// sampleServices стартовый каталог
var sampleServices = []domain.Service{
	{
		ID:              "1",
		Name:            "Business Meeting Room",
		Description:     "Perfect for team meetings and client presentations. Equipped with projector and whiteboard.",
		DurationMinutes: 60,
		Price:           50,
		Category:        "meeting",
		ImageURL:        "https://images.pexels.com/photos/1181406/pexels-photo-1181406.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "2",
		Name:            "Conference Hall",
		Description:     "Large hall for conferences, seminars, and corporate events. Can accommodate up to 100 people.",
		DurationMinutes: 180,
		Price:           200,
		Category:        "conference",
		ImageURL:        "https://images.pexels.com/photos/2833037/pexels-photo-2833037.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "3",
		Name:            "Private Office",
		Description:     "Quiet private office for focused work or confidential meetings.",
		DurationMinutes: 60,
		Price:           25,
		Category:        "office",
		ImageURL:        "https://images.pexels.com/photos/1170412/pexels-photo-1170412.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "4",
		Name:            "Creative Studio",
		Description:     "Well-lit studio space ideal for photoshoots, art projects, or creative workshops.",
		DurationMinutes: 120,
		Price:           75,
		Category:        "studio",
		ImageURL:        "https://images.pexels.com/photos/7319307/pexels-photo-7319307.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "5",
		Name:            "Training Room",
		Description:     "Equipped room for training sessions and workshops with flexible seating arrangements.",
		DurationMinutes: 240,
		Price:           150,
		Category:        "training",
		ImageURL:        "https://images.pexels.com/photos/3184339/pexels-photo-3184339.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "6",
		Name:            "Hot Desk",
		Description:     "Flexible desk space in a shared coworking environment.",
		DurationMinutes: 60,
		Price:           10,
		Category:        "coworking",
		ImageURL:        "https://images.pexels.com/photos/7978314/pexels-photo-7978314.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
}

// sampleBooking подтверждённое бронирование демо-пользователя на сегодня
var sampleBooking = domain.Booking{
	ID:          "1",
	UserID:      "2",
	ServiceID:   "1",
	ServiceName: "Business Meeting Room",
	StartTime:   "14:00",
	EndTime:     "15:00",
	Status:      domain.StatusConfirmed,
}
