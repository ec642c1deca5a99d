package persistence

import (
	"context"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRegistrar implements identity.Registrar using GORM
type GormRegistrar struct {
	db *gorm.DB
}

// NewGormRegistrar creates a new GormRegistrar
func NewGormRegistrar(db *gorm.DB) *GormRegistrar {
	return &GormRegistrar{db: db}
}

// CreateTenantWithOwner inserts the tenant and its first user in one
// transaction; neither row exists if either insert fails.
func (r *GormRegistrar) CreateTenantWithOwner(ctx context.Context, t *identity.Tenant, owner *identity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.TenantModelFromDomain(t)).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Create(models.UserModelFromDomain(owner)).Error; err != nil {
			return translateError(err)
		}
		return nil
	})
}
