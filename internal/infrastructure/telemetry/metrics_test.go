package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newTestMeter(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumByAttr(t *testing.T, m metricdata.Metrics, key attribute.Key) map[string]int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	out := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(key)
		out[v.Emit()] += dp.Value
	}
	return out
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(), config.TelemetryConfig{}, "test", zap.NewNop())
	require.NoError(t, err)
	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestCounterAndHistogram(t *testing.T) {
	provider, reader := newTestMeter(t)
	meter := provider.Meter("test")

	c, err := NewCounter(meter, "requests", "requests", "{request}")
	require.NoError(t, err)
	c.Inc(context.Background(), AttrHTTPMethod.String("GET"))
	c.Add(context.Background(), 2, AttrHTTPMethod.String("GET"))

	h, err := NewHistogram(meter, HistogramOpts{Name: "latency", Unit: "s", Boundaries: HTTPDurationBuckets})
	require.NoError(t, err)
	h.RecordDuration(context.Background(), 30*time.Millisecond)

	metrics := collect(t, reader)
	assert.Equal(t, int64(3), sumByAttr(t, metrics["requests"], AttrHTTPMethod)["GET"])

	hist, ok := metrics["latency"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.03, hist.DataPoints[0].Sum, 0.0001)
	assert.Equal(t, HTTPDurationBuckets, hist.DataPoints[0].Bounds)
}

func TestGauge(t *testing.T) {
	provider, reader := newTestMeter(t)
	g, err := NewGauge(provider.Meter("test"), "pool", "pool", "{connection}")
	require.NoError(t, err)
	g.Record(context.Background(), 4)
	g.Record(context.Background(), 7)

	gauge, ok := collect(t, reader)["pool"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(7), gauge.DataPoints[0].Value)
}

func TestDomainMetrics(t *testing.T) {
	provider, reader := newTestMeter(t)
	m, err := NewDomainMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	tenant := uuid.New()
	m.InvoiceCreated(ctx, tenant, "PENDING", decimal.RequireFromString("1150.00"))
	m.InvoiceCreated(ctx, tenant, "PAID", decimal.RequireFromString("230.00"))
	m.ContractCreated(ctx, tenant, "ACTIVE")
	m.DocumentRendered(ctx, "invoice", 800*time.Millisecond, nil)
	m.DocumentRendered(ctx, "invoice", 0, errors.New("chrome gone"))
	m.NotificationSent(ctx, "email", nil)
	m.NotificationSent(ctx, "whatsapp", errors.New("twilio 400"))

	metrics := collect(t, reader)
	assert.Equal(t, map[string]int64{"PENDING": 1, "PAID": 1},
		sumByAttr(t, metrics["aqario.invoices.created"], AttrInvoiceStatus))
	assert.Equal(t, int64(1), sumByAttr(t, metrics["aqario.contracts.created"], AttrTenantID)[tenant.String()])
	assert.Equal(t, map[string]int64{"succeeded": 1, "failed": 1},
		sumByAttr(t, metrics["aqario.documents.rendered"], AttrOutcome))
	assert.Equal(t, map[string]int64{"email": 1, "whatsapp": 1},
		sumByAttr(t, metrics["aqario.notifications.sent"], AttrChannel))

	amounts, ok := metrics["aqario.invoices.total_amount"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, amounts.DataPoints, 1)
	assert.InDelta(t, 1380.0, amounts.DataPoints[0].Sum, 0.001)

	render, ok := metrics["aqario.documents.render_duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.Equal(t, uint64(1), render.DataPoints[0].Count)
}
