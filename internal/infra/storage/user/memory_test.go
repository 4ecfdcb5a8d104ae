package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/domain"
)

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{ID: "u1", Name: "Jane", Email: " Jane@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", created.Email)

	byEmail, err := repo.GetByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", byID.Name)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRepository_EmailTaken(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{ID: "u2", Email: "A@B.C"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
