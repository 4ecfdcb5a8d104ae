package slot

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/pkg/types"
)

var testDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func newSlot(serviceID, start string) *domain.TimeSlot {
	return domain.NewTimeSlot(serviceID, testDate, types.MustTimeString(start))
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSlot("1", "09:00")))

	err := repo.Create(ctx, newSlot("1", "09:00"))
	assert.ErrorIs(t, err, ErrSlotAlreadyExists)

	require.NoError(t, repo.Create(ctx, newSlot("2", "09:00")))
}

func TestMemoryRepository_ListAvailableSorted(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []*domain.TimeSlot{
		newSlot("1", "15:00"),
		newSlot("1", "08:00"),
		newSlot("1", "11:00"),
		newSlot("2", "09:00"),
		domain.NewTimeSlot("1", testDate.AddDate(0, 0, 1), "08:00"),
	}))
	require.NoError(t, repo.Reserve(ctx, newSlot("1", "11:00").Key()))

	slots, err := repo.ListAvailable(ctx, "1", testDate)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("15:00"), slots[1].StartTime)

	empty, err := repo.ListAvailable(ctx, "unknown", testDate)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryRepository_ReserveRelease(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	slot := newSlot("1", "10:00")
	require.NoError(t, repo.Create(ctx, slot))

	require.NoError(t, repo.Reserve(ctx, slot.Key()))
	assert.ErrorIs(t, repo.Reserve(ctx, slot.Key()), ErrSlotNotAvailable)

	require.NoError(t, repo.Release(ctx, slot.Key()))
	got, err := repo.GetByKey(ctx, slot.Key())
	require.NoError(t, err)
	assert.True(t, got.Available)

	missing := newSlot("1", "23:00").Key()
	assert.ErrorIs(t, repo.Reserve(ctx, missing), ErrSlotNotFound)
	assert.ErrorIs(t, repo.Release(ctx, missing), ErrSlotNotFound)
}

func TestMemoryRepository_ConcurrentReserve(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	slot := newSlot("1", "12:00")
	require.NoError(t, repo.Create(ctx, slot))

	var successes int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.Reserve(ctx, slot.Key()) == nil {
				atomic.AddInt32(&successes, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	slot := newSlot("1", "13:00")
	require.NoError(t, repo.Create(ctx, slot))

	got, err := repo.GetByKey(ctx, slot.Key())
	require.NoError(t, err)
	got.Available = false

	again, err := repo.GetByKey(ctx, slot.Key())
	require.NoError(t, err)
	assert.True(t, again.Available)
}
