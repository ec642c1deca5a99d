package persistence

import (
	"context"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenantRepository implements identity.TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindBySubdomain finds a tenant by its unique subdomain
func (r *GormTenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*identity.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).
		Where("subdomain = ?", identity.NormalizeSubdomain(subdomain)).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll lists tenants; search matches name and subdomain
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Tenant, int64, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.TenantModel{})
	query = applySearch(query, filter.Search, "name", "subdomain")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.TenantModel
	query = applyOrder(query, filter, TenantSortFields)
	if err := applyPage(query, filter).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	tenants := make([]identity.Tenant, len(rows))
	for i := range rows {
		tenants[i] = *rows[i].ToDomain()
	}
	return tenants, total, nil
}

// ExistsBySubdomain reports whether the subdomain is taken
func (r *GormTenantRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TenantModel{}).
		Where("subdomain = ?", identity.NormalizeSubdomain(subdomain)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, t *identity.Tenant) error {
	return saveTenant(r.db.WithContext(ctx), t)
}

// Delete removes the tenant and every record it owns
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.TenantModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return shared.ErrNotFound
		}

		scope, err := shared.NewScope(id)
		if err != nil {
			return err
		}
		owned := []any{
			&models.InvoiceModel{},
			&models.ContractModel{},
			&models.ClientModel{},
			&models.PropertyModel{},
		}
		for _, m := range owned {
			if err := tenant.ScopedDB(ctx, tx, scope).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.UserModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TenantModel{}, "id = ?", id).Error
	})
}

func saveTenant(db *gorm.DB, t *identity.Tenant) error {
	model := models.TenantModelFromDomain(t)
	return upsert(db, model, model.ID)
}

// upsert updates the row with the model's primary key, creating it when no
// row matched. db carries any scoping conditions.
func upsert(db *gorm.DB, model any, id uuid.UUID) error {
	result := db.Model(model).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	return translateError(db.Session(&gorm.Session{NewDB: true}).Create(model).Error)
}
