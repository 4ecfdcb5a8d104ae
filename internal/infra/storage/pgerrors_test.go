package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueViolationOf(t *testing.T) {
	activeSlot := &pq.Error{Code: "23505", Constraint: "idx_bookings_active_slot"}

	assert.True(t, IsUniqueViolationOf(fmt.Errorf("insert: %w", activeSlot), "idx_bookings_active_slot"))
	assert.False(t, IsUniqueViolationOf(activeSlot, "bookings_pkey"))
	assert.False(t, IsUniqueViolationOf(&pq.Error{Code: "23503", Constraint: "idx_bookings_active_slot"}, "idx_bookings_active_slot"))
	assert.False(t, IsUniqueViolationOf(errors.New("boom"), "idx_bookings_active_slot"))
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})))
	assert.False(t, IsSerializationFailure(errors.New("boom")))
}
