package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/events"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	"github.com/m04kA/BookingHub/internal/service/bookings/models"
	createBooking "github.com/m04kA/BookingHub/internal/usecase/create_booking"
	"github.com/m04kA/BookingHub/pkg/logger"
	"github.com/m04kA/BookingHub/pkg/metrics"
	"github.com/m04kA/BookingHub/pkg/ptr"
	"github.com/m04kA/BookingHub/pkg/txmanager"
	"github.com/m04kA/BookingHub/pkg/types"
)

var (
	today = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now   = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

type env struct {
	bookings  *bookingRepo.MemoryRepository
	slots     *slotRepo.MemoryRepository
	publisher *recordingPublisher
	svc       *Service
}

func newEnv() *env {
	e := &env{
		bookings:  bookingRepo.NewMemoryRepository(),
		slots:     slotRepo.NewMemoryRepository(),
		publisher: &recordingPublisher{},
	}
	e.svc = NewService(e.bookings, e.slots, e.publisher, (*metrics.Metrics)(nil), txmanager.NewLocalManager(), logger.NewNop())
	e.svc.timeProvider = fixedTime{now: now}
	return e
}

func (e *env) addBooking(t *testing.T, b *domain.Booking) {
	t.Helper()
	_, err := e.bookings.Create(context.Background(), b)
	require.NoError(t, err)
}

func TestCancel_RestoresSlot(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	services := serviceRepo.NewMemoryRepository()

	_, err := services.Create(ctx, &domain.Service{ID: "room-a", Name: "Room A", DurationMinutes: 60, Category: "meeting"})
	require.NoError(t, err)
	require.NoError(t, e.slots.Create(ctx, domain.NewTimeSlot("room-a", today, types.MustTimeString("10:00"))))

	create := createBooking.NewUseCase(e.bookings, e.slots, services, e.publisher,
		(*metrics.Metrics)(nil), txmanager.NewLocalManager(), logger.NewNop())

	created, err := create.Execute(ctx, &createBooking.Request{
		UserID: "u1", ServiceID: "room-a", Date: "2024-06-10", StartTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), created.EndTime)

	available, err := e.slots.ListAvailable(ctx, "room-a", today)
	require.NoError(t, err)
	assert.Empty(t, available)

	resp, err := e.svc.Cancel(ctx, created.ID, models.Caller{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)

	available, err = e.slots.ListAvailable(ctx, "room-a", today)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, types.TimeString("10:00"), available[0].StartTime)

	stored, err := e.bookings.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)

	require.Len(t, e.publisher.events, 2)
	assert.Equal(t, events.TypeBookingCancelled, e.publisher.events[1].Type)
}

func TestCancel_AlreadyCancelledIsNoop(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.addBooking(t, &domain.Booking{ID: "b1", UserID: "u1", ServiceID: "s1", Date: today, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})
	require.NoError(t, e.slots.Create(ctx, &domain.TimeSlot{ServiceID: "s1", Date: today, StartTime: "10:00", Available: false}))

	_, err := e.svc.Cancel(ctx, "b1", models.Caller{UserID: "u1"})
	require.NoError(t, err)

	// Слот снова заняли другим бронированием
	require.NoError(t, e.slots.Reserve(ctx, domain.SlotKey{ServiceID: "s1", Date: today, StartTime: "10:00"}))

	resp, err := e.svc.Cancel(ctx, "b1", models.Caller{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	slot, err := e.slots.GetByKey(ctx, domain.SlotKey{ServiceID: "s1", Date: today, StartTime: "10:00"})
	require.NoError(t, err)
	assert.False(t, slot.Available)
	assert.Len(t, e.publisher.events, 1)
}

func TestCancel_Errors(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.addBooking(t, &domain.Booking{ID: "b1", UserID: "u1", ServiceID: "s1", Date: today, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})
	e.addBooking(t, &domain.Booking{ID: "done", UserID: "u1", ServiceID: "s1", Date: today, StartTime: "08:00", EndTime: "09:00", Status: domain.StatusCompleted})

	tests := []struct {
		name   string
		id     string
		caller models.Caller
		want   error
	}{
		{name: "not found", id: "missing", caller: models.Caller{UserID: "u1"}, want: ErrBookingNotFound},
		{name: "foreign booking", id: "b1", caller: models.Caller{UserID: "u2"}, want: ErrAccessDenied},
		{name: "completed", id: "done", caller: models.Caller{UserID: "u1"}, want: ErrCannotCancel},
		{name: "empty id", id: "", caller: models.Caller{UserID: "u1"}, want: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.Cancel(ctx, tt.id, tt.caller)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	stored, err := e.bookings.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Empty(t, e.publisher.events)
}

func TestCancel_AdminMissingSlot(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.addBooking(t, &domain.Booking{ID: "b1", UserID: "u1", ServiceID: "s1", Date: today, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})

	resp, err := e.svc.Cancel(ctx, "b1", models.Caller{UserID: "admin", IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.addBooking(t, &domain.Booking{ID: "b1", UserID: "u1", ServiceID: "s1", ServiceName: "Room A", Date: today, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})

	resp, err := e.svc.GetByID(ctx, "b1", models.Caller{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "Room A", resp.ServiceName)
	assert.Nil(t, resp.CancelledAt)

	_, err = e.svc.GetByID(ctx, "b1", models.Caller{UserID: "admin", IsAdmin: true})
	assert.NoError(t, err)

	_, err = e.svc.GetByID(ctx, "b1", models.Caller{UserID: "u2"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = e.svc.GetByID(ctx, "missing", models.Caller{UserID: "u1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_Tabs(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	e.addBooking(t, &domain.Booking{ID: "upcoming", UserID: "u1", Date: tomorrow, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})
	e.addBooking(t, &domain.Booking{ID: "today", UserID: "u1", Date: today, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed})
	e.addBooking(t, &domain.Booking{ID: "old", UserID: "u1", Date: yesterday, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCompleted})
	e.addBooking(t, &domain.Booking{ID: "cancelled", UserID: "u1", Date: tomorrow, StartTime: "12:00", EndTime: "13:00", Status: domain.StatusCancelled})
	e.addBooking(t, &domain.Booking{ID: "foreign", UserID: "u2", Date: tomorrow, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})

	ids := func(resp *models.BookingListResponse) []string {
		out := make([]string, 0, len(resp.Bookings))
		for _, b := range resp.Bookings {
			out = append(out, b.ID)
		}
		return out
	}

	all, err := e.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cancelled", "upcoming", "today", "old"}, ids(all))

	active, err := e.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: "u1", Tab: "active"})
	require.NoError(t, err)
	assert.Equal(t, []string{"upcoming", "today"}, ids(active))

	past, err := e.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: "u1", Tab: "past"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cancelled", "old"}, ids(past))

	_, err = e.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: "u1", Tab: "archive"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAllBookings(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.addBooking(t, &domain.Booking{ID: "b1", UserID: "u1", Date: today, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed})
	e.addBooking(t, &domain.Booking{ID: "b2", UserID: "u2", Date: today, StartTime: "12:00", EndTime: "13:00", Status: domain.StatusCancelled})

	admin := models.Caller{UserID: "1", IsAdmin: true}

	all, err := e.svc.GetAllBookings(ctx, &models.GetAllBookingsRequest{Caller: admin})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	confirmed, err := e.svc.GetAllBookings(ctx, &models.GetAllBookingsRequest{Caller: admin, Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.Len(t, confirmed.Bookings, 1)
	assert.Equal(t, "b1", confirmed.Bookings[0].ID)

	_, err = e.svc.GetAllBookings(ctx, &models.GetAllBookingsRequest{Caller: admin, Status: ptr.Ptr("pending")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.svc.GetAllBookings(ctx, &models.GetAllBookingsRequest{Caller: models.Caller{UserID: "u1"}})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
