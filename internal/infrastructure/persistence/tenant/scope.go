// Package tenant confines GORM statements to a single tenant.
//
// Repositories never build queries on tenant-owned tables from a bare *gorm.DB;
// they go through ScopedDB, which requires a shared.Scope and adds
//
//	WHERE <table>.tenant_id = ?
//
// to every statement. RegisterGuard installs callbacks that reject any
// query, update or delete on a tenant-owned table that lacks such a
// condition.
package tenant

import (
	"context"

	"github.com/aqario/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column is the tenant discriminator column on every tenant-owned table
const Column = "tenant_id"

const skipGuardKey = "tenant:skip_guard"

// Scope returns a GORM scope filtering on the current table's tenant column
func Scope(scope shared.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if err := scope.Validate(); err != nil {
			_ = db.AddError(err)
			return db
		}
		return db.Where(condition(scope))
	}
}

// ScopedDB returns a session bound to ctx and filtered to the scope's tenant.
// A zero scope yields a session whose every statement fails with
// shared.ErrTenantRequired without touching the database.
func ScopedDB(ctx context.Context, db *gorm.DB, scope shared.Scope) *gorm.DB {
	tx := db.WithContext(ctx)
	if err := scope.Validate(); err != nil {
		_ = tx.AddError(err)
		return tx
	}
	return tx.Where(condition(scope))
}

func condition(scope shared.Scope) clause.Eq {
	return clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: Column},
		Value:  scope.TenantID(),
	}
}

// CrossTenant marks a statement as deliberately spanning tenants, such as
// the global invoice number uniqueness check. The guard lets it through.
func CrossTenant(db *gorm.DB) *gorm.DB {
	return db.Set(skipGuardKey, true)
}
