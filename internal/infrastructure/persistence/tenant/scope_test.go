package tenant

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type listing struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null"`
	Title    string
}

func (listing) TableName() string {
	return "listings"
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestScopedDB(t *testing.T) {
	tenantID := uuid.New()
	scope := shared.MustScope(tenantID)

	t.Run("filters on the current table's tenant column", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "listings" WHERE "listings"."tenant_id" = \$1`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "title"}))

		var rows []listing
		require.NoError(t, ScopedDB(context.Background(), db, scope).Find(&rows).Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("combines with other conditions", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "listings" WHERE "listings"."tenant_id" = \$1 AND id = \$2`).
			WithArgs(tenantID, id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "title"}).AddRow(id, tenantID, "Villa"))

		var row listing
		require.NoError(t, ScopedDB(context.Background(), db, scope).Where("id = ?", id).First(&row).Error)
		assert.Equal(t, "Villa", row.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero scope fails without touching the database", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()

		var rows []listing
		err := ScopedDB(context.Background(), db, shared.Scope{}).Find(&rows).Error
		assert.ErrorIs(t, err, shared.ErrTenantRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuard(t *testing.T) {
	tenantID := uuid.New()

	t.Run("rejects unscoped query on a tenant table", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()
		require.NoError(t, RegisterGuard(db, "listings"))

		var rows []listing
		err := db.Where("title = ?", "x").Find(&rows).Error
		assert.ErrorIs(t, err, shared.ErrTenantRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unscoped delete", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()
		require.NoError(t, RegisterGuard(db, "listings"))

		err := db.Where("id = ?", uuid.New()).Delete(&listing{}).Error
		assert.ErrorIs(t, err, shared.ErrTenantRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("allows scoped query", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()
		require.NoError(t, RegisterGuard(db, "listings"))

		mock.ExpectQuery(`SELECT \* FROM "listings" WHERE "listings"."tenant_id" = \$1`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "title"}))

		var rows []listing
		require.NoError(t, ScopedDB(context.Background(), db, shared.MustScope(tenantID)).Find(&rows).Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("allows explicitly cross-tenant statements", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()
		require.NoError(t, RegisterGuard(db, "listings"))

		mock.ExpectQuery(`SELECT count\(\*\) FROM "listings" WHERE title = \$1`).
			WithArgs("INV-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		var n int64
		require.NoError(t, CrossTenant(db).Model(&listing{}).Where("title = ?", "INV-1").Count(&n).Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ignores other tables", func(t *testing.T) {
		db, mock, mockDB := setupMockDB(t)
		defer mockDB.Close()
		require.NoError(t, RegisterGuard(db, "contracts"))

		mock.ExpectQuery(`SELECT \* FROM "listings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "title"}))

		var rows []listing
		require.NoError(t, db.Find(&rows).Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
