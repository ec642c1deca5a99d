// Package event runs post-commit hooks for domain events.
//
// HookPipeline is synchronous: Run returns once every matching hook has
// finished, failed, panicked or timed out. Hook failures are recorded as
// outcomes and never propagate to the caller.
package event

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/logger"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DefaultHookTimeout bounds a hook registered without its own timeout
const DefaultHookTimeout = 5 * time.Second

const meterName = "github.com/aqario/backend/event"

var (
	attrHook      = attribute.Key("hook")
	attrEventType = attribute.Key("event_type")
	attrOutcome   = attribute.Key("outcome")
)

// HookPipeline runs registered hooks for each event in registration order
type HookPipeline struct {
	registry *HookRegistry
	logger   *zap.Logger
	runs     *telemetry.Counter
	duration *telemetry.Histogram
}

// NewHookPipeline creates a pipeline. A nil meter uses the global provider.
func NewHookPipeline(log *zap.Logger, meter metric.Meter) (*HookPipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(meterName)
	}

	runs, err := telemetry.NewCounter(meter, "aqario.hooks.runs",
		"Post-commit hook runs by outcome", "{runs}")
	if err != nil {
		return nil, err
	}
	duration, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "aqario.hooks.duration",
		Description: "Post-commit hook run duration",
		Unit:        "s",
		Boundaries:  telemetry.HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &HookPipeline{
		registry: NewHookRegistry(),
		logger:   log.Named("hooks"),
		runs:     runs,
		duration: duration,
	}, nil
}

// Register appends hook. timeout <= 0 selects DefaultHookTimeout.
func (p *HookPipeline) Register(hook shared.PostCommitHook, timeout time.Duration) *HookPipeline {
	if timeout <= 0 {
		timeout = DefaultHookTimeout
	}
	p.registry.Register(hook, timeout)
	return p
}

// Hooks lists the registered hook names in run order
func (p *HookPipeline) Hooks() []string {
	return p.registry.Names()
}

// Run executes every matching hook for each event and reports one outcome
// per hook run
func (p *HookPipeline) Run(ctx context.Context, events ...shared.DomainEvent) []shared.HookOutcome {
	var outcomes []shared.HookOutcome
	for _, evt := range events {
		for _, reg := range p.registry.forEvent(evt.EventType()) {
			outcomes = append(outcomes, p.runHook(ctx, reg, evt))
		}
	}
	return outcomes
}

func (p *HookPipeline) runHook(ctx context.Context, reg registration, evt shared.DomainEvent) shared.HookOutcome {
	name := reg.hook.Name()
	start := time.Now()

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reg.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.invoke(hookCtx, reg.hook, evt) }()

	var err error
	select {
	case err = <-done:
	case <-hookCtx.Done():
		// the hook keeps running detached until it observes its context
		err = fmt.Errorf("hook %s: %w", name, hookCtx.Err())
	}

	outcome := shared.HookOutcome{
		Hook:      name,
		EventType: evt.EventType(),
		Status:    shared.HookSucceeded,
		Duration:  time.Since(start),
	}
	switch {
	case err == nil:
	case errors.Is(err, shared.ErrHookSkipped):
		outcome.Status = shared.HookSkipped
	default:
		outcome.Status = shared.HookFailed
		outcome.Error = err.Error()
	}

	p.record(ctx, outcome, evt)
	return outcome
}

// invoke calls the hook, turning a panic into an error
func (p *HookPipeline) invoke(ctx context.Context, hook shared.PostCommitHook, evt shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("hook panicked",
				zap.String("hook", hook.Name()),
				zap.String("event_type", evt.EventType()),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("hook %s panicked: %v", hook.Name(), r)
		}
	}()

	return hook.Handle(ctx, evt)
}

func (p *HookPipeline) record(ctx context.Context, outcome shared.HookOutcome, evt shared.DomainEvent) {
	attrs := []attribute.KeyValue{
		attrHook.String(outcome.Hook),
		attrEventType.String(outcome.EventType),
		attrOutcome.String(string(outcome.Status)),
	}
	p.runs.Inc(ctx, attrs...)
	p.duration.RecordDuration(ctx, outcome.Duration, attrs...)

	fields := []zap.Field{
		zap.String("hook", outcome.Hook),
		zap.String("event_type", outcome.EventType),
		zap.String("event_id", evt.EventID().String()),
		zap.String("aggregate_id", evt.AggregateID().String()),
		zap.String("outcome", string(outcome.Status)),
		zap.Duration("duration", outcome.Duration),
	}
	log := logger.WithLogger(ctx, p.logger)
	switch outcome.Status {
	case shared.HookFailed:
		log.Warn("post-commit hook failed", append(fields, zap.String("error", outcome.Error))...)
	case shared.HookSkipped:
		log.Debug("post-commit hook skipped", fields...)
	default:
		log.Info("post-commit hook succeeded", fields...)
	}
}

var _ shared.HookRunner = (*HookPipeline)(nil)
