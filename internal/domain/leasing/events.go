package leasing

import (
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	// AggregateTypeContract is the aggregate type for contract events
	AggregateTypeContract = "Contract"

	EventTypeContractCreated = "contract.created"
)

// ContractCreatedEvent is raised when a new contract is persisted
type ContractCreatedEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID `json:"contract_id"`
	PropertyID uuid.UUID `json:"property_id"`
	ClientID   uuid.UUID `json:"client_id"`
}

// NewContractCreatedEvent builds the creation event for c
func NewContractCreatedEvent(c *Contract) *ContractCreatedEvent {
	return &ContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractCreated, AggregateTypeContract, c.ID, c.TenantID),
		ContractID:      c.ID,
		PropertyID:      c.PropertyID,
		ClientID:        c.ClientID,
	}
}
