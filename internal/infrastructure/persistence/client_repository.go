package persistence

import (
	"context"

	"github.com/aqario/backend/internal/domain/partner"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client of the scope's tenant
func (r *GormClientRepository) FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := tenant.ScopedDB(ctx, r.db, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll lists clients; search covers name, phone, email and national ID
func (r *GormClientRepository) FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]partner.Client, int64, error) {
	filter = filter.Normalize()
	query := tenant.ScopedDB(ctx, r.db, scope).Model(&models.ClientModel{})
	query = applySearch(query, filter.Search, "name", "phone", "email", "national_id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var rows []models.ClientModel
	query = applyOrder(query, filter, ClientSortFields)
	if err := applyPage(query, filter).Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]partner.Client, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, total, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, scope shared.Scope, c *partner.Client) error {
	if !c.BelongsTo(scope) {
		return shared.ErrTenantRequired
	}
	model := models.ClientModelFromDomain(c)
	return upsert(tenant.ScopedDB(ctx, r.db, scope), model, model.ID)
}

// Delete removes the client with its contracts and their invoices
func (r *GormClientRepository) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contractIDs := tenant.ScopedDB(ctx, tx, scope).
			Model(&models.ContractModel{}).
			Select("id").
			Where("client_id = ?", id)
		if err := deleteContractsAndInvoices(ctx, tx, scope, contractIDs); err != nil {
			return err
		}
		return deleteOne(tenant.ScopedDB(ctx, tx, scope), &models.ClientModel{}, id)
	})
}

// Count returns the number of clients of the tenant
func (r *GormClientRepository) Count(ctx context.Context, scope shared.Scope) (int64, error) {
	var n int64
	err := tenant.ScopedDB(ctx, r.db, scope).Model(&models.ClientModel{}).Count(&n).Error
	return n, translateError(err)
}
