package finance

import (
	"context"
	"time"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRepository persists invoices within a tenant scope
type InvoiceRepository interface {
	FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*Invoice, error)
	// FindByIDWithRelations also loads Contract with its Client and Property
	FindByIDWithRelations(ctx context.Context, scope shared.Scope, id uuid.UUID) (*Invoice, error)
	FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]Invoice, int64, error)
	Save(ctx context.Context, scope shared.Scope, inv *Invoice) error
	Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error

	// NumberTaken checks the globally unique invoice number, ignoring excludeID
	NumberTaken(ctx context.Context, number string, excludeID uuid.UUID) (bool, error)

	// SumTotalByStatus sums total_amount per status
	SumTotalByStatus(ctx context.Context, scope shared.Scope) (map[Status]decimal.Decimal, error)
	// FindPaidBetween returns PAID invoices with from <= paid_date < to
	FindPaidBetween(ctx context.Context, scope shared.Scope, from, to time.Time) ([]PaidAmount, error)
}

// PaidAmount is one paid invoice as seen by revenue reporting
type PaidAmount struct {
	PaidDate    time.Time
	TotalAmount decimal.Decimal
}
