package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every persisted domain object
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides identity and timestamps
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// Touch bumps UpdatedAt after a mutation
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// NewBaseEntity creates a base entity with a fresh ID
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TenantEntity is a BaseEntity owned by exactly one tenant. It also buffers
// the domain events raised while the entity is being mutated.
type TenantEntity struct {
	BaseEntity
	TenantID uuid.UUID

	events []DomainEvent
}

// NewTenantEntity creates a tenant-owned entity inside the given scope
func NewTenantEntity(scope Scope) TenantEntity {
	return TenantEntity{
		BaseEntity: NewBaseEntity(),
		TenantID:   scope.TenantID(),
	}
}

// BelongsTo reports whether the entity is owned by the scope's tenant
func (e *TenantEntity) BelongsTo(scope Scope) bool {
	return !scope.IsZero() && e.TenantID == scope.TenantID()
}

// AddDomainEvent queues an event for publication after commit
func (e *TenantEntity) AddDomainEvent(event DomainEvent) {
	e.events = append(e.events, event)
}

// PullDomainEvents returns the queued events and clears the queue
func (e *TenantEntity) PullDomainEvents() []DomainEvent {
	events := e.events
	e.events = nil
	return events
}
