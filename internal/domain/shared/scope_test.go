package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope(t *testing.T) {
	t.Run("rejects nil tenant", func(t *testing.T) {
		_, err := NewScope(uuid.Nil)
		assert.ErrorIs(t, err, ErrTenantRequired)
	})

	t.Run("keeps tenant id", func(t *testing.T) {
		id := uuid.New()
		s, err := NewScope(id)
		require.NoError(t, err)
		assert.Equal(t, id, s.TenantID())
		assert.False(t, s.IsZero())
		assert.NoError(t, s.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var s Scope
		assert.True(t, s.IsZero())
		assert.ErrorIs(t, s.Validate(), ErrTenantRequired)
	})
}

func TestMustScope_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { MustScope(uuid.Nil) })
}

func TestTenantEntity_BelongsTo(t *testing.T) {
	s1 := MustScope(uuid.New())
	s2 := MustScope(uuid.New())

	e := NewTenantEntity(s1)
	assert.True(t, e.BelongsTo(s1))
	assert.False(t, e.BelongsTo(s2))
	assert.False(t, e.BelongsTo(Scope{}))
}

func TestTenantEntity_PullDomainEvents(t *testing.T) {
	s := MustScope(uuid.New())
	e := NewTenantEntity(s)
	evt := NewBaseDomainEvent("thing.created", "Thing", e.ID, s.TenantID())
	e.AddDomainEvent(&evt)

	events := e.PullDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "thing.created", events[0].EventType())
	assert.Empty(t, e.PullDomainEvents())
}

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewDomainError("NOT_FOUND", "Property not found"))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	v := NewValidationError("amount", "amount must not be negative")
	assert.ErrorIs(t, v, ErrValidation)
	assert.Equal(t, "amount must not be negative", v.Details["amount"])
}

func TestFilter_Normalize(t *testing.T) {
	f := Filter{Page: 0, PageSize: 1000}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 100, f.PageSize)
	assert.NotNil(t, f.Filters)

	f = Filter{Page: 3, PageSize: 10}.Normalize()
	assert.Equal(t, 20, f.Offset())
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2}, 21, 1, 10)
	assert.Equal(t, 3, p.TotalPages)
}
