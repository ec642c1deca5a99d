package persistence

import (
	"github.com/aqario/backend/internal/infrastructure/persistence/models"
	"github.com/aqario/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
)

// TenantOwnedTables lists every table partitioned by tenant_id
var TenantOwnedTables = []string{"properties", "clients", "contracts", "invoices"}

// AutoMigrate creates or updates the tables from the GORM models. PostgreSQL
// deployments use the SQL migrations instead, which also add the composite
// (tenant_id, id) foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TenantModel{},
		&models.UserModel{},
		&models.PropertyModel{},
		&models.ClientModel{},
		&models.ContractModel{},
		&models.InvoiceModel{},
	)
}

// InstallTenantGuard rejects unscoped statements on tenant-owned tables
func InstallTenantGuard(db *gorm.DB) error {
	return tenant.RegisterGuard(db, TenantOwnedTables...)
}
