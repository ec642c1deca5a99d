package persistence

import (
	"context"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements leasing.Repository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract of the scope's tenant
func (r *GormContractRepository) FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*leasing.Contract, error) {
	var model models.ContractModel
	if err := tenant.ScopedDB(ctx, r.db, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDWithRelations finds a contract and loads its property and client
// through the same scope.
func (r *GormContractRepository) FindByIDWithRelations(ctx context.Context, scope shared.Scope, id uuid.UUID) (*leasing.Contract, error) {
	c, err := r.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := loadContractRelations(ctx, r.db, scope, c); err != nil {
		return nil, err
	}
	return c, nil
}

// FindAll lists contracts newest first. Search covers the property title and
// the client name; the "status" filter narrows by status.
func (r *GormContractRepository) FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]leasing.Contract, int64, error) {
	filter = filter.Normalize()
	// built twice: a joined statement is not reused between Count and Find
	build := func() *gorm.DB {
		query := tenant.ScopedDB(ctx, r.db, scope).Model(&models.ContractModel{})
		if filter.Search != "" {
			query = query.
				Joins("LEFT JOIN properties ON properties.id = contracts.property_id AND properties.tenant_id = contracts.tenant_id").
				Joins("LEFT JOIN clients ON clients.id = contracts.client_id AND clients.tenant_id = contracts.tenant_id")
			query = applySearch(query, filter.Search, "properties.title", "clients.name")
		}
		if status, ok := stringFilter(filter, "status"); ok {
			query = query.Where("contracts.status = ?", status)
		}
		return query
	}

	var total int64
	if err := build().Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var rows []models.ContractModel
	query := applyOrder(build().Select("contracts.*"), filter, ContractSortFields)
	if err := applyPage(query, filter).Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]leasing.Contract, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, total, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, scope shared.Scope, c *leasing.Contract) error {
	if !c.BelongsTo(scope) {
		return shared.ErrTenantRequired
	}
	model := models.ContractModelFromDomain(c)
	return upsert(tenant.ScopedDB(ctx, r.db, scope), model, model.ID)
}

// Delete removes the contract with its invoices
func (r *GormContractRepository) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tenant.ScopedDB(ctx, tx, scope).
			Where("contract_id = ?", id).
			Delete(&models.InvoiceModel{}).Error; err != nil {
			return translateError(err)
		}
		return deleteOne(tenant.ScopedDB(ctx, tx, scope), &models.ContractModel{}, id)
	})
}

// CountByStatus counts the tenant's contracts in the given status
func (r *GormContractRepository) CountByStatus(ctx context.Context, scope shared.Scope, status leasing.Status) (int64, error) {
	var n int64
	err := tenant.ScopedDB(ctx, r.db, scope).
		Model(&models.ContractModel{}).
		Where("status = ?", string(status)).
		Count(&n).Error
	return n, translateError(err)
}

func loadContractRelations(ctx context.Context, db *gorm.DB, scope shared.Scope, c *leasing.Contract) error {
	var prop models.PropertyModel
	err := tenant.ScopedDB(ctx, db, scope).First(&prop, "id = ?", c.PropertyID).Error
	switch {
	case err == nil:
		c.Property = prop.ToDomain()
	case translateError(err) != shared.ErrNotFound:
		return translateError(err)
	}

	var client models.ClientModel
	err = tenant.ScopedDB(ctx, db, scope).First(&client, "id = ?", c.ClientID).Error
	switch {
	case err == nil:
		c.Client = client.ToDomain()
	case translateError(err) != shared.ErrNotFound:
		return translateError(err)
	}
	return nil
}
