// Package leasing models rental contracts between an agency's clients and
// its properties.
package leasing

import (
	"strings"
	"time"

	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a contract
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusExpired    Status = "EXPIRED"
	StatusTerminated Status = "TERMINATED"
)

// ParseStatus validates a status string. Empty input yields StatusActive.
func ParseStatus(s string) (Status, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return StatusActive, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", shared.NewValidationError("status", "Unknown contract status: "+s)
	}
	return st, nil
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusTerminated:
		return true
	}
	return false
}

// Contract binds a client to a property for a date range
type Contract struct {
	shared.TenantEntity
	PropertyID    uuid.UUID
	ClientID      uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	MonthlyAmount decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        Status
	PDFFile       string // storage key under contracts/
	Notes         string

	// Loaded by repositories on request; never persisted from here
	Property *property.Property
	Client   *partner.Client
}

// Terms carries the mutable attributes of a contract
type Terms struct {
	StartDate     time.Time
	EndDate       time.Time
	MonthlyAmount decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        Status
	Notes         string
}

// NewContract creates a contract inside the scope. The property and the
// client must be owned by the same tenant as the scope.
func NewContract(scope shared.Scope, prop *property.Property, client *partner.Client, terms Terms) (*Contract, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	c := &Contract{TenantEntity: shared.NewTenantEntity(scope)}
	if err := c.attach(scope, prop, client); err != nil {
		return nil, err
	}
	if terms.Status == "" {
		terms.Status = StatusActive
	}
	if err := c.apply(terms); err != nil {
		return nil, err
	}

	evt := NewContractCreatedEvent(c)
	c.AddDomainEvent(evt)
	return c, nil
}

// Reassign points the contract at another property and client of the same tenant
func (c *Contract) Reassign(scope shared.Scope, prop *property.Property, client *partner.Client) error {
	if !c.BelongsTo(scope) {
		return shared.ErrNotFound
	}
	if err := c.attach(scope, prop, client); err != nil {
		return err
	}
	c.Touch()
	return nil
}

// Update replaces the contract terms. A stored document becomes stale and
// its key is returned so the caller can discard it.
func (c *Contract) Update(terms Terms) (staleDocument string, err error) {
	if terms.Status == "" {
		terms.Status = c.Status
	}
	if err := c.apply(terms); err != nil {
		return "", err
	}
	c.Touch()
	return c.InvalidateDocument(), nil
}

// AttachDocument records the storage key of the generated PDF
func (c *Contract) AttachDocument(key string) {
	c.PDFFile = key
	c.Touch()
}

// InvalidateDocument clears the stored PDF key and returns the previous one
func (c *Contract) InvalidateDocument() string {
	old := c.PDFFile
	c.PDFFile = ""
	return old
}

func (c *Contract) attach(scope shared.Scope, prop *property.Property, client *partner.Client) error {
	if prop == nil || !prop.BelongsTo(scope) {
		return shared.ErrInvalidReference.WithDetail("property", "Property does not exist in this tenant")
	}
	if client == nil || !client.BelongsTo(scope) {
		return shared.ErrInvalidReference.WithDetail("client", "Client does not exist in this tenant")
	}
	c.PropertyID = prop.ID
	c.ClientID = client.ID
	c.Property = prop
	c.Client = client
	return nil
}

func (c *Contract) apply(t Terms) error {
	if t.StartDate.IsZero() {
		return shared.NewValidationError("start_date", "Start date is required")
	}
	if t.EndDate.IsZero() {
		return shared.NewValidationError("end_date", "End date is required")
	}
	start, end := truncateDate(t.StartDate), truncateDate(t.EndDate)
	if end.Before(start) {
		return shared.NewValidationError("end_date", "End date cannot be before start date")
	}
	if !valueobject.IsNonNegative(t.MonthlyAmount) {
		return shared.NewValidationError("monthly_amount", "Monthly amount cannot be negative")
	}
	if !valueobject.IsAmount(t.MonthlyAmount) {
		return shared.NewValidationError("monthly_amount", "Ensure that there are no more than 12 digits in total")
	}
	if !valueobject.IsNonNegative(t.TotalAmount) {
		return shared.NewValidationError("total_amount", "Total amount cannot be negative")
	}
	if !valueobject.IsAmount(t.TotalAmount) {
		return shared.NewValidationError("total_amount", "Ensure that there are no more than 12 digits in total")
	}
	if !t.Status.IsValid() {
		return shared.NewValidationError("status", "Unknown contract status: "+string(t.Status))
	}

	c.StartDate = start
	c.EndDate = end
	c.MonthlyAmount = valueobject.RoundCurrency(t.MonthlyAmount)
	c.TotalAmount = valueobject.RoundCurrency(t.TotalAmount)
	c.Status = t.Status
	c.Notes = strings.TrimSpace(t.Notes)
	return nil
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
