package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewNotFound("Expense not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAlreadyExists)

	wrapped := fmt.Errorf("loading expense: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)
}

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{"plain", NewInvalidParameter("Invalid year parameter", "abcd"), "Invalid year parameter"},
		{"store failure", NewStoreFailure("records.find", errors.New("connection refused")), "records.find: Database operation failed: connection refused"},
		{"internal", NewInternalError(errors.New("boom")), "Internal server error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDomainError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreFailure("donations.list", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStoreFailure)
}

func TestAsDomainError(t *testing.T) {
	de, ok := AsDomainError(fmt.Errorf("wrapped: %w", NewInvalidParameter("Year must be between 2000 and 2026", 1999)))
	require.True(t, ok)
	assert.Equal(t, CodeInvalidParameter, de.Code)
	assert.Equal(t, 1999, de.Received)

	_, ok = AsDomainError(errors.New("plain"))
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := ParseID(id.String(), "Record not found")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("not-a-uuid", "Record not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Record not found")
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	before := e.UpdatedAt
	e.Touch()
	assert.False(t, e.UpdatedAt.Before(before))
	assert.Equal(t, e.ID, e.GetID())
}
