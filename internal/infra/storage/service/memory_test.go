package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/domain"
)

func seedCatalog(t *testing.T) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, s := range []*domain.Service{
		{ID: "1", Name: "Business Meeting Room", Description: "Professional meeting space", Category: "meeting", DurationMinutes: 60},
		{ID: "2", Name: "Conference Hall", Description: "Large hall for events", Category: "conference", DurationMinutes: 180},
		{ID: "3", Name: "Small Meeting Pod", Description: "Quiet pod", Category: "meeting", DurationMinutes: 30},
		{ID: "4", Name: "Creative Studio", Description: "Photo and video shoots", Category: "studio", DurationMinutes: 120},
	} {
		_, err := repo.Create(ctx, s)
		require.NoError(t, err)
	}

	return repo
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := seedCatalog(t)

	s, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Conference Hall", s.Name)

	_, err = repo.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := seedCatalog(t)

	_, err := repo.Create(context.Background(), &domain.Service{ID: "1", Name: "Dup", Category: "meeting"})
	assert.ErrorIs(t, err, ErrServiceAlreadyExists)
}

func TestMemoryRepository_ListFilter(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	all, err := repo.List(ctx, domain.ServiceFilter{Category: domain.CategoryAll})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "4", all[3].ID)

	meetings, err := repo.List(ctx, domain.ServiceFilter{Category: "meeting"})
	require.NoError(t, err)
	assert.Len(t, meetings, 2)

	search, err := repo.List(ctx, domain.ServiceFilter{Search: "VIDEO"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "4", search[0].ID)
}

func TestMemoryRepository_Categories(t *testing.T) {
	repo := seedCatalog(t)

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"meeting", "conference", "studio"}, categories)
}
