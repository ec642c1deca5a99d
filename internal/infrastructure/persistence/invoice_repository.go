package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements finance.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice of the scope's tenant
func (r *GormInvoiceRepository) FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*finance.Invoice, error) {
	var model models.InvoiceModel
	if err := tenant.ScopedDB(ctx, r.db, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDWithRelations finds an invoice and loads its contract, together
// with the contract's property and client.
func (r *GormInvoiceRepository) FindByIDWithRelations(ctx context.Context, scope shared.Scope, id uuid.UUID) (*finance.Invoice, error) {
	inv, err := r.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if inv.ContractID == nil {
		return inv, nil
	}

	var cm models.ContractModel
	err = tenant.ScopedDB(ctx, r.db, scope).First(&cm, "id = ?", *inv.ContractID).Error
	if errors.Is(translateError(err), shared.ErrNotFound) {
		return inv, nil
	}
	if err != nil {
		return nil, translateError(err)
	}

	contract := cm.ToDomain()
	if err := loadContractRelations(ctx, r.db, scope, contract); err != nil {
		return nil, err
	}
	inv.Contract = contract
	return inv, nil
}

// FindAll lists invoices. Search covers the invoice number and notes; the
// "status" and "contract_id" filters narrow the result.
func (r *GormInvoiceRepository) FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]finance.Invoice, int64, error) {
	filter = filter.Normalize()
	query := tenant.ScopedDB(ctx, r.db, scope).Model(&models.InvoiceModel{})
	query = applySearch(query, filter.Search, "invoice_number", "notes")
	if status, ok := stringFilter(filter, "status"); ok {
		query = query.Where("status = ?", status)
	}
	if contractID, ok := stringFilter(filter, "contract_id"); ok {
		id, err := uuid.Parse(contractID)
		if err != nil {
			return nil, 0, shared.NewValidationError("contract_id", "Invalid contract ID")
		}
		query = query.Where("contract_id = ?", id)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var rows []models.InvoiceModel
	query = applyOrder(query, filter, InvoiceSortFields)
	if err := applyPage(query, filter).Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]finance.Invoice, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, total, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, scope shared.Scope, inv *finance.Invoice) error {
	if !inv.BelongsTo(scope) {
		return shared.ErrTenantRequired
	}
	model := models.InvoiceModelFromDomain(inv)
	return upsert(tenant.ScopedDB(ctx, r.db, scope), model, model.ID)
}

// Delete removes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	return deleteOne(tenant.ScopedDB(ctx, r.db, scope), &models.InvoiceModel{}, id)
}

// NumberTaken checks invoice numbers across all tenants
func (r *GormInvoiceRepository) NumberTaken(ctx context.Context, number string, excludeID uuid.UUID) (bool, error) {
	query := tenant.CrossTenant(r.db.WithContext(ctx)).
		Model(&models.InvoiceModel{}).
		Where("invoice_number = ?", number)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// SumTotalByStatus sums total_amount per status. Statuses without invoices
// are present with a zero sum.
func (r *GormInvoiceRepository) SumTotalByStatus(ctx context.Context, scope shared.Scope) (map[finance.Status]decimal.Decimal, error) {
	var rows []struct {
		Status string
		Total  decimal.NullDecimal
	}
	if err := tenant.ScopedDB(ctx, r.db, scope).
		Model(&models.InvoiceModel{}).
		Select("status, SUM(total_amount) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	sums := make(map[finance.Status]decimal.Decimal, len(finance.AllStatuses))
	for _, s := range finance.AllStatuses {
		sums[s] = decimal.Zero
	}
	for _, row := range rows {
		if row.Total.Valid {
			sums[finance.Status(row.Status)] = row.Total.Decimal.Round(2)
		}
	}
	return sums, nil
}

// FindPaidBetween returns PAID invoices with from <= paid_date < to
func (r *GormInvoiceRepository) FindPaidBetween(ctx context.Context, scope shared.Scope, from, to time.Time) ([]finance.PaidAmount, error) {
	var rows []models.InvoiceModel
	if err := tenant.ScopedDB(ctx, r.db, scope).
		Select("id", "paid_date", "total_amount").
		Where("status = ?", string(finance.StatusPaid)).
		Where("paid_date IS NOT NULL AND paid_date >= ? AND paid_date < ?", from.UTC(), to.UTC()).
		Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	paid := make([]finance.PaidAmount, 0, len(rows))
	for _, row := range rows {
		paid = append(paid, finance.PaidAmount{
			PaidDate:    row.PaidDate.UTC(),
			TotalAmount: row.TotalAmount,
		})
	}
	return paid, nil
}
