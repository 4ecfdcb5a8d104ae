package add_time_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/domain"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	"github.com/m04kA/BookingHub/pkg/logger"
)

func newUseCase(t *testing.T) (*UseCase, *slotRepo.MemoryRepository) {
	t.Helper()
	services := serviceRepo.NewMemoryRepository()
	_, err := services.Create(context.Background(), &domain.Service{ID: "1", Name: "Room", DurationMinutes: 60, Category: "meeting"})
	require.NoError(t, err)

	slots := slotRepo.NewMemoryRepository()
	return NewUseCase(slots, services, logger.NewNop()), slots
}

func TestExecute_AddsAvailableSlot(t *testing.T) {
	uc, slots := newUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{ServiceID: "1", Date: "2024-07-01", StartTime: "18:00"})
	require.NoError(t, err)
	assert.Equal(t, "1-2024-07-01-18:00", resp.ID)
	assert.True(t, resp.Available)

	available, err := slots.ListAvailable(ctx, "1", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, available, 1)
}

func TestExecute_DuplicateRejected(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	req := &Request{ServiceID: "1", Date: "2024-07-01", StartTime: "18:00"}

	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrSlotAlreadyExists)
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ServiceID: "9", Date: "2024-07-01", StartTime: "18:00"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(ctx, &Request{ServiceID: "1", Date: "2024-13-01", StartTime: "18:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ServiceID: "1", Date: "2024-07-01", StartTime: "24:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
