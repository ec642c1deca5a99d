package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testEvent implements DomainEvent for testing
type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", uuid.New(), uuid.New()),
	}
}

// journal records hook invocations across hooks
type journal struct {
	mu    sync.Mutex
	calls []string
}

func (j *journal) add(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, name)
}

func (j *journal) get() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.calls...)
}

// testHook implements PostCommitHook for testing
type testHook struct {
	name       string
	eventTypes []string
	journal    *journal
	handle     func(ctx context.Context) error
}

func (h *testHook) Name() string         { return h.name }
func (h *testHook) EventTypes() []string { return h.eventTypes }

func (h *testHook) Handle(ctx context.Context, _ shared.DomainEvent) error {
	h.journal.add(h.name)
	if h.handle != nil {
		return h.handle(ctx)
	}
	return nil
}

func newPipeline(t *testing.T) (*HookPipeline, *sdkmetric.ManualReader, *observer.ObservedLogs) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	core, logs := observer.New(zapcore.DebugLevel)

	p, err := NewHookPipeline(zap.New(core), provider.Meter("test"))
	require.NoError(t, err)
	return p, reader, logs
}

// runCounts sums aqario.hooks.runs by hook and outcome
func runCounts(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "aqario.hooks.runs" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				hook, _ := dp.Attributes.Value(attribute.Key("hook"))
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				counts[hook.AsString()+"/"+outcome.AsString()] += dp.Value
			}
		}
	}
	return counts
}

func TestHookPipeline_RunsInRegistrationOrder(t *testing.T) {
	p, _, _ := newPipeline(t)
	j := &journal{}
	p.Register(&testHook{name: "invoice_pdf", eventTypes: []string{"invoice.created"}, journal: j}, 0).
		Register(&testHook{name: "audit", journal: j}, 0).
		Register(&testHook{name: "invoice_email", eventTypes: []string{"invoice.created"}, journal: j}, 0).
		Register(&testHook{name: "contract_pdf", eventTypes: []string{"contract.created"}, journal: j}, 0).
		Register(&testHook{name: "invoice_whatsapp", eventTypes: []string{"invoice.created"}, journal: j}, 0)

	outcomes := p.Run(context.Background(), newTestEvent("invoice.created"))

	assert.Equal(t, []string{"invoice_pdf", "audit", "invoice_email", "invoice_whatsapp"}, j.get())
	require.Len(t, outcomes, 4)
	for _, o := range outcomes {
		assert.Equal(t, shared.HookSucceeded, o.Status)
		assert.Equal(t, "invoice.created", o.EventType)
		assert.Empty(t, o.Error)
	}
}

func TestHookPipeline_FailureDoesNotStopLaterHooks(t *testing.T) {
	p, reader, logs := newPipeline(t)
	j := &journal{}
	p.Register(&testHook{name: "first", journal: j, handle: func(context.Context) error {
		return errors.New("smtp down")
	}}, 0)
	p.Register(&testHook{name: "second", journal: j}, 0)

	outcomes := p.Run(context.Background(), newTestEvent("invoice.created"))

	require.Len(t, outcomes, 2)
	assert.Equal(t, shared.HookFailed, outcomes[0].Status)
	assert.Equal(t, "smtp down", outcomes[0].Error)
	assert.Equal(t, shared.HookSucceeded, outcomes[1].Status)
	assert.Equal(t, []string{"first", "second"}, j.get())

	assert.Equal(t, 1, logs.FilterMessage("post-commit hook failed").Len())
	counts := runCounts(t, reader)
	assert.Equal(t, int64(1), counts["first/failed"])
	assert.Equal(t, int64(1), counts["second/succeeded"])
}

func TestHookPipeline_RecoversPanics(t *testing.T) {
	p, _, logs := newPipeline(t)
	j := &journal{}
	p.Register(&testHook{name: "boom", journal: j, handle: func(context.Context) error {
		panic("nil map")
	}}, 0)
	p.Register(&testHook{name: "after", journal: j}, 0)

	outcomes := p.Run(context.Background(), newTestEvent("contract.created"))

	require.Len(t, outcomes, 2)
	assert.Equal(t, shared.HookFailed, outcomes[0].Status)
	assert.Contains(t, outcomes[0].Error, "panicked: nil map")
	assert.Equal(t, shared.HookSucceeded, outcomes[1].Status)
	assert.Equal(t, 1, logs.FilterMessage("hook panicked").Len())
}

func TestHookPipeline_Skipped(t *testing.T) {
	p, reader, _ := newPipeline(t)
	p.Register(&testHook{name: "invoice_email", journal: &journal{}, handle: func(context.Context) error {
		return shared.ErrHookSkipped.WithDetail("reason", "client has no email")
	}}, 0)

	outcomes := p.Run(context.Background(), newTestEvent("invoice.created"))

	require.Len(t, outcomes, 1)
	assert.Equal(t, shared.HookSkipped, outcomes[0].Status)
	assert.Empty(t, outcomes[0].Error)
	assert.Equal(t, int64(1), runCounts(t, reader)["invoice_email/skipped"])
}

func TestHookPipeline_Timeout(t *testing.T) {
	p, _, _ := newPipeline(t)
	j := &journal{}
	p.Register(&testHook{name: "slow", journal: j, handle: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}, 20*time.Millisecond)
	p.Register(&testHook{name: "stuck", journal: j, handle: func(context.Context) error {
		time.Sleep(time.Second)
		return nil
	}}, 20*time.Millisecond)
	p.Register(&testHook{name: "fast", journal: j}, 0)

	start := time.Now()
	outcomes := p.Run(context.Background(), newTestEvent("invoice.created"))

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	require.Len(t, outcomes, 3)
	assert.Equal(t, shared.HookFailed, outcomes[0].Status)
	assert.Contains(t, outcomes[0].Error, "deadline exceeded")
	assert.Equal(t, shared.HookFailed, outcomes[1].Status)
	assert.Contains(t, outcomes[1].Error, "deadline exceeded")
	assert.Equal(t, shared.HookSucceeded, outcomes[2].Status)
}

func TestHookPipeline_IgnoresCallerCancellation(t *testing.T) {
	p, _, _ := newPipeline(t)
	p.Register(&testHook{name: "pdf", journal: &journal{}, handle: func(ctx context.Context) error {
		return ctx.Err()
	}}, 0)

	// the request may already be finished when hooks run after commit
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := p.Run(ctx, newTestEvent("invoice.created"))
	require.Len(t, outcomes, 1)
	assert.Equal(t, shared.HookSucceeded, outcomes[0].Status)
}

func TestHookPipeline_MultipleEvents(t *testing.T) {
	p, _, _ := newPipeline(t)
	j := &journal{}
	p.Register(&testHook{name: "invoice_pdf", eventTypes: []string{"invoice.created"}, journal: j}, 0)
	p.Register(&testHook{name: "contract_pdf", eventTypes: []string{"contract.created"}, journal: j}, 0)

	outcomes := p.Run(context.Background(),
		newTestEvent("contract.created"), newTestEvent("invoice.created"), newTestEvent("user.created"))

	assert.Equal(t, []string{"contract_pdf", "invoice_pdf"}, j.get())
	assert.Len(t, outcomes, 2)
}

func TestHookPipeline_NoHooks(t *testing.T) {
	p, err := NewHookPipeline(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, p.Run(context.Background(), newTestEvent("invoice.created")))
	assert.Empty(t, p.Hooks())
}
