package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents something that happened to an aggregate
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	AggregateType() string
	TenantID() uuid.UUID
}

// BaseDomainEvent provides common fields for all domain events
type BaseDomainEvent struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AggID         uuid.UUID `json:"aggregate_id"`
	AggType       string    `json:"aggregate_type"`
	TenantIDValue uuid.UUID `json:"tenant_id"`
}

func (e *BaseDomainEvent) EventID() uuid.UUID     { return e.ID }
func (e *BaseDomainEvent) EventType() string      { return e.Type }
func (e *BaseDomainEvent) OccurredAt() time.Time  { return e.Timestamp }
func (e *BaseDomainEvent) AggregateID() uuid.UUID { return e.AggID }
func (e *BaseDomainEvent) AggregateType() string  { return e.AggType }
func (e *BaseDomainEvent) TenantID() uuid.UUID    { return e.TenantIDValue }

// NewBaseDomainEvent creates a new base domain event
func NewBaseDomainEvent(eventType, aggType string, aggID, tenantID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:            uuid.New(),
		Type:          eventType,
		Timestamp:     time.Now().UTC(),
		AggID:         aggID,
		AggType:       aggType,
		TenantIDValue: tenantID,
	}
}

// PostCommitHook is a side effect that runs after an aggregate has been
// durably persisted. A hook failure never undoes the write.
type PostCommitHook interface {
	// Name identifies the hook in logs, metrics and outcomes
	Name() string
	// EventTypes lists the events this hook reacts to; empty means all
	EventTypes() []string
	// Handle runs the side effect. Returning ErrHookSkipped marks the run
	// as skipped rather than failed.
	Handle(ctx context.Context, event DomainEvent) error
}

// ErrHookSkipped is returned by hooks that had nothing to do
var ErrHookSkipped = NewDomainError("HOOK_SKIPPED", "Hook skipped")

// HookStatus is the result class of one hook run
type HookStatus string

const (
	HookSucceeded HookStatus = "succeeded"
	HookSkipped   HookStatus = "skipped"
	HookFailed    HookStatus = "failed"
)

// HookOutcome records the result of one hook run for one event
type HookOutcome struct {
	Hook      string        `json:"hook"`
	EventType string        `json:"event_type"`
	Status    HookStatus    `json:"status"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// HookRunner runs the registered post-commit hooks for a batch of events
type HookRunner interface {
	Run(ctx context.Context, events ...DomainEvent) []HookOutcome
}

// NopHookRunner runs nothing
type NopHookRunner struct{}

// Run implements HookRunner
func (NopHookRunner) Run(context.Context, ...DomainEvent) []HookOutcome { return nil }
