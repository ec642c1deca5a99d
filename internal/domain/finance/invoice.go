// Package finance models invoicing: derived tax totals, payment status and
// the revenue figures the dashboard reports.
package finance

import (
	"strings"
	"time"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the VAT percentage applied when none is given
var DefaultTaxRate = decimal.NewFromInt(15)

// Status is the payment state of an invoice
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusOverdue   Status = "OVERDUE"
	StatusCancelled Status = "CANCELLED"
)

// AllStatuses lists every invoice status
var AllStatuses = []Status{StatusPending, StatusPaid, StatusOverdue, StatusCancelled}

// ParseStatus validates a status string. Empty input yields StatusPending.
func ParseStatus(s string) (Status, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return StatusPending, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", shared.NewValidationError("status", "Unknown invoice status: "+s)
	}
	return st, nil
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Invoice is a bill issued by a tenant, optionally against a contract.
// TaxAmount and TotalAmount are derived from Amount and TaxRate on every
// write and cannot be set directly.
type Invoice struct {
	shared.TenantEntity
	ContractID    *uuid.UUID
	InvoiceNumber string
	Amount        decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	DueDate       time.Time
	PaidDate      *time.Time
	Status        Status
	PDFFile       string // storage key under invoices/
	Notes         string

	// Loaded by repositories on request, with its Client and Property
	Contract *leasing.Contract
}

// Details carries the caller-editable attributes of an invoice
type Details struct {
	InvoiceNumber string
	Amount        decimal.Decimal
	TaxRate       decimal.Decimal
	DueDate       time.Time
	PaidDate      *time.Time
	Status        Status
	Notes         string
}

// NewInvoice creates an invoice inside the scope. contract may be nil; when
// present it must belong to the same tenant.
func NewInvoice(scope shared.Scope, contract *leasing.Contract, d Details) (*Invoice, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	inv := &Invoice{TenantEntity: shared.NewTenantEntity(scope)}
	if err := inv.LinkContract(scope, contract); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	if err := inv.apply(d); err != nil {
		return nil, err
	}

	inv.AddDomainEvent(NewInvoiceCreatedEvent(inv))
	return inv, nil
}

// Update replaces the editable attributes and recomputes the derived
// fields. A stored document becomes stale and its key is returned.
func (i *Invoice) Update(d Details) (staleDocument string, err error) {
	if d.Status == "" {
		d.Status = i.Status
	}
	if err := i.apply(d); err != nil {
		return "", err
	}
	i.Touch()
	return i.InvalidateDocument(), nil
}

// LinkContract attaches (or with nil, detaches) the invoice's contract
func (i *Invoice) LinkContract(scope shared.Scope, contract *leasing.Contract) error {
	if contract == nil {
		i.ContractID = nil
		i.Contract = nil
		return nil
	}
	if !contract.BelongsTo(scope) {
		return shared.ErrInvalidReference.WithDetail("contract", "Contract does not exist in this tenant")
	}
	id := contract.ID
	i.ContractID = &id
	i.Contract = contract
	return nil
}

// AttachDocument records the storage key of the generated PDF
func (i *Invoice) AttachDocument(key string) {
	i.PDFFile = key
	i.Touch()
}

// InvalidateDocument clears the stored PDF key and returns the previous one
func (i *Invoice) InvalidateDocument() string {
	old := i.PDFFile
	i.PDFFile = ""
	return old
}

// Client resolves the invoice's client through its contract, or nil
func (i *Invoice) Client() *partner.Client {
	if i.Contract == nil {
		return nil
	}
	return i.Contract.Client
}

func (i *Invoice) apply(d Details) error {
	number := strings.TrimSpace(d.InvoiceNumber)
	if number == "" {
		return shared.NewValidationError("invoice_number", "Invoice number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewValidationError("invoice_number", "Invoice number cannot exceed 50 characters")
	}
	if d.DueDate.IsZero() {
		return shared.NewValidationError("due_date", "Due date is required")
	}
	if !d.Status.IsValid() {
		return shared.NewValidationError("status", "Unknown invoice status: "+string(d.Status))
	}
	if err := i.setAmounts(d.Amount, d.TaxRate); err != nil {
		return err
	}

	i.InvoiceNumber = number
	i.DueDate = truncateDate(d.DueDate)
	i.Status = d.Status
	i.Notes = strings.TrimSpace(d.Notes)
	i.PaidDate = nil
	if d.PaidDate != nil {
		paid := truncateDate(*d.PaidDate)
		i.PaidDate = &paid
	}
	if i.Status == StatusPaid && i.PaidDate == nil {
		today := truncateDate(time.Now())
		i.PaidDate = &today
	}
	return nil
}

func (i *Invoice) setAmounts(amount, taxRate decimal.Decimal) error {
	if !valueobject.IsNonNegative(amount) {
		return shared.NewValidationError("amount", "Amount cannot be negative")
	}
	if !valueobject.IsAmount(amount) {
		return shared.NewValidationError("amount", "Ensure that there are no more than 12 digits in total")
	}
	if !valueobject.IsRate(taxRate) {
		return shared.NewValidationError("tax_rate", "Tax rate must be between 0 and 999.99")
	}
	rounded := valueobject.RoundCurrency(amount)
	rate := taxRate.Round(2)
	total := rounded.Add(valueobject.PercentOf(rounded, rate))
	if total.GreaterThan(valueobject.MaxAmount) {
		return shared.NewValidationError("amount", "Total amount including tax exceeds "+valueobject.FixedString(valueobject.MaxAmount))
	}

	i.Amount = rounded
	i.TaxRate = rate
	i.recalculate()
	return nil
}

// recalculate derives tax and total from amount and rate
func (i *Invoice) recalculate() {
	i.TaxAmount = valueobject.PercentOf(i.Amount, i.TaxRate)
	i.TotalAmount = i.Amount.Add(i.TaxAmount)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
