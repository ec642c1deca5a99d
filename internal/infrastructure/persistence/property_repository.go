package persistence

import (
	"context"

	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPropertyRepository implements property.Repository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property of the scope's tenant
func (r *GormPropertyRepository) FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*property.Property, error) {
	var model models.PropertyModel
	if err := tenant.ScopedDB(ctx, r.db, scope).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll lists properties. Search covers title and location; the
// "property_type" filter narrows by type.
func (r *GormPropertyRepository) FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]property.Property, int64, error) {
	filter = filter.Normalize()
	query := tenant.ScopedDB(ctx, r.db, scope).Model(&models.PropertyModel{})
	query = applySearch(query, filter.Search, "title", "location")
	if t, ok := stringFilter(filter, "property_type"); ok {
		query = query.Where("property_type = ?", t)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var rows []models.PropertyModel
	query = applyOrder(query, filter, PropertySortFields)
	if err := applyPage(query, filter).Find(&rows).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]property.Property, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, total, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, scope shared.Scope, p *property.Property) error {
	if !p.BelongsTo(scope) {
		return shared.ErrTenantRequired
	}
	model := models.PropertyModelFromDomain(p)
	return upsert(tenant.ScopedDB(ctx, r.db, scope), model, model.ID)
}

// Delete removes the property with its contracts and their invoices
func (r *GormPropertyRepository) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contractIDs := tenant.ScopedDB(ctx, tx, scope).
			Model(&models.ContractModel{}).
			Select("id").
			Where("property_id = ?", id)
		if err := deleteContractsAndInvoices(ctx, tx, scope, contractIDs); err != nil {
			return err
		}
		return deleteOne(tenant.ScopedDB(ctx, tx, scope), &models.PropertyModel{}, id)
	})
}

// Count returns the number of properties of the tenant
func (r *GormPropertyRepository) Count(ctx context.Context, scope shared.Scope) (int64, error) {
	var n int64
	err := tenant.ScopedDB(ctx, r.db, scope).Model(&models.PropertyModel{}).Count(&n).Error
	return n, translateError(err)
}

// CountByType returns the number of properties per type; absent types are omitted
func (r *GormPropertyRepository) CountByType(ctx context.Context, scope shared.Scope) (map[property.Type]int64, error) {
	var rows []struct {
		PropertyType string
		Count        int64
	}
	err := tenant.ScopedDB(ctx, r.db, scope).
		Model(&models.PropertyModel{}).
		Select("property_type, COUNT(*) AS count").
		Group("property_type").
		Order("property_type").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	out := make(map[property.Type]int64, len(rows))
	for _, row := range rows {
		out[property.Type(row.PropertyType)] = row.Count
	}
	return out, nil
}

// deleteContractsAndInvoices removes the contracts selected by the contractIDs
// subquery and every invoice issued against them.
func deleteContractsAndInvoices(ctx context.Context, tx *gorm.DB, scope shared.Scope, contractIDs *gorm.DB) error {
	if err := tenant.ScopedDB(ctx, tx, scope).
		Where("contract_id IN (?)", contractIDs).
		Delete(&models.InvoiceModel{}).Error; err != nil {
		return translateError(err)
	}
	return translateError(tenant.ScopedDB(ctx, tx, scope).
		Where("id IN (?)", contractIDs).
		Delete(&models.ContractModel{}).Error)
}

// deleteOne deletes a row by id, reporting ErrNotFound when nothing matched
func deleteOne(db *gorm.DB, model any, id uuid.UUID) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
