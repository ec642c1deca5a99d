package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type listing struct {
	ID    uint
	Title string
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&listing{}))
	return db
}

func TestDBMetrics_RecordsQueries(t *testing.T) {
	db := openTestDB(t)
	provider, reader := newTestMeter(t)

	m, err := NewDBMetrics(provider.Meter("db"), DBMetricsConfig{}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Register(db))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&listing{Title: "Villa"}).Error)
	var rows []listing
	require.NoError(t, db.WithContext(ctx).Find(&rows).Error)
	require.NoError(t, db.WithContext(ctx).Model(&listing{}).Where("id = ?", 1).Update("title", "Land").Error)

	metrics := collect(t, reader)
	ops := sumByAttr(t, metrics["db_query_total"], AttrDBOperation)
	assert.Equal(t, int64(1), ops["INSERT"])
	assert.Equal(t, int64(1), ops["SELECT"])
	assert.Equal(t, int64(1), ops["UPDATE"])
	if slow, ok := metrics["db_slow_query_total"]; ok {
		assert.Empty(t, sumByAttr(t, slow, AttrDBTable))
	}
}

func TestDBMetrics_SlowQueryAndPoolStats(t *testing.T) {
	db := openTestDB(t)
	provider, reader := newTestMeter(t)

	m, err := NewDBMetrics(provider.Meter("db"), DBMetricsConfig{SlowQueryThreshold: 1}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Register(db))

	var rows []listing
	require.NoError(t, db.Find(&rows).Error)

	m.collectPoolStats(context.Background())
	m.StartPoolStatsCollection(context.Background())
	m.Stop()
	m.Stop()

	metrics := collect(t, reader)
	assert.Equal(t, int64(1), sumByAttr(t, metrics["db_slow_query_total"], AttrDBTable)["listings"])
	_, ok := metrics["db_pool_connections_max"]
	assert.True(t, ok)
}

func TestRegisterDBTracing_FlagsSlowQueries(t *testing.T) {
	db := openTestDB(t)
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{
		DBName:             "aqario",
		SlowQueryThreshold: 1,
		TracerProvider:     tp,
	}, zap.NewNop()))

	require.NoError(t, db.Create(&listing{Title: "Office"}).Error)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)
	var create sdktrace.ReadOnlySpan
	for _, s := range spans {
		if s.Name() == "gorm.Create" {
			create = s
		}
	}
	require.NotNil(t, create)
	assert.Contains(t, create.Attributes(), attribute.Bool("db.slow_query", true))
	assert.Contains(t, create.Attributes(), attribute.String("db.sql.table", "listings"))
}

func TestDetectOperationType(t *testing.T) {
	assert.Equal(t, "SELECT", detectOperationType("  select * from invoices"))
	assert.Equal(t, "DELETE", detectOperationType("DELETE FROM clients"))
	assert.Equal(t, "OTHER", detectOperationType("PRAGMA foreign_keys = ON"))
}
