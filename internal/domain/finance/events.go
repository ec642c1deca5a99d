package finance

import (
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	// AggregateTypeInvoice is the aggregate type for invoice events
	AggregateTypeInvoice = "Invoice"

	EventTypeInvoiceCreated = "invoice.created"
)

// InvoiceCreatedEvent is raised when a new invoice is persisted
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceID     uuid.UUID  `json:"invoice_id"`
	InvoiceNumber string     `json:"invoice_number"`
	ContractID    *uuid.UUID `json:"contract_id,omitempty"`
}

// NewInvoiceCreatedEvent builds the creation event for inv
func NewInvoiceCreatedEvent(inv *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, AggregateTypeInvoice, inv.ID, inv.TenantID),
		InvoiceID:       inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		ContractID:      inv.ContractID,
	}
}
