package tenant

import (
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Guard rejects statements on tenant-owned tables that carry no tenant filter
type Guard struct {
	tables map[string]bool
}

// NewGuard creates a guard for the given tenant-owned tables
func NewGuard(tables ...string) *Guard {
	g := &Guard{tables: make(map[string]bool, len(tables))}
	for _, t := range tables {
		g.tables[t] = true
	}
	return g
}

// RegisterGuard installs a guard on db for the given tables
func RegisterGuard(db *gorm.DB, tables ...string) error {
	return NewGuard(tables...).Register(db)
}

// Register installs the guard callbacks. Creates are not guarded: the
// tenant_id of a new row comes from the domain entity.
func (g *Guard) Register(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("tenant:guard_query", g.check); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("tenant:guard_row", g.check); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("tenant:guard_update", g.check); err != nil {
		return err
	}
	return cb.Delete().Before("gorm:delete").Register("tenant:guard_delete", g.check)
}

func (g *Guard) check(db *gorm.DB) {
	if db.Error != nil || db.Statement == nil {
		return
	}
	if !g.tables[db.Statement.Table] {
		return
	}
	if skip, ok := db.Get(skipGuardKey); ok && skip == true {
		return
	}
	if g.hasTenantCondition(db.Statement) {
		return
	}
	_ = db.AddError(shared.ErrTenantRequired)
}

func (g *Guard) hasTenantCondition(stmt *gorm.Statement) bool {
	c, ok := stmt.Clauses["WHERE"]
	if !ok {
		return false
	}
	where, ok := c.Expression.(clause.Where)
	if !ok {
		return false
	}
	for _, expr := range where.Exprs {
		if exprHasTenant(expr) {
			return true
		}
	}
	return false
}

func exprHasTenant(expr clause.Expression) bool {
	switch e := expr.(type) {
	case clause.Eq:
		return columnIsTenant(e.Column)
	case clause.IN:
		return columnIsTenant(e.Column)
	case clause.Expr:
		return strings.Contains(e.SQL, Column)
	case clause.NamedExpr:
		return strings.Contains(e.SQL, Column)
	case clause.AndConditions:
		for _, sub := range e.Exprs {
			if exprHasTenant(sub) {
				return true
			}
		}
	}
	// an OR branch does not confine the statement
	return false
}

func columnIsTenant(col any) bool {
	switch c := col.(type) {
	case clause.Column:
		return c.Name == Column
	case string:
		return c == Column || strings.HasSuffix(c, "."+Column)
	}
	return false
}
