package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

// DomainMetrics holds the business instruments for properties, contracts,
// invoices, generated documents and notifications. A nil *DomainMetrics
// records nothing.
type DomainMetrics struct {
	invoicesCreated    *Counter
	invoiceAmount      *Histogram
	contractsCreated   *Counter
	documentsRendered  *Counter
	renderDuration     *Histogram
	notificationsTotal *Counter
}

// NewDomainMetrics creates the business instruments on meter
func NewDomainMetrics(meter metric.Meter) (*DomainMetrics, error) {
	m := &DomainMetrics{}
	var err error
	if m.invoicesCreated, err = NewCounter(meter, "aqario.invoices.created",
		"Invoices created", "{invoice}"); err != nil {
		return nil, err
	}
	if m.invoiceAmount, err = NewHistogram(meter, HistogramOpts{
		Name:        "aqario.invoices.total_amount",
		Description: "Invoice total amount including tax",
		Unit:        "SAR",
		Boundaries:  []float64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000, 500000},
	}); err != nil {
		return nil, err
	}
	if m.contractsCreated, err = NewCounter(meter, "aqario.contracts.created",
		"Contracts created", "{contract}"); err != nil {
		return nil, err
	}
	if m.documentsRendered, err = NewCounter(meter, "aqario.documents.rendered",
		"PDF documents rendered by kind and outcome", "{document}"); err != nil {
		return nil, err
	}
	if m.renderDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "aqario.documents.render_duration",
		Description: "PDF render duration",
		Unit:        "s",
		Boundaries:  RenderDurationBuckets,
	}); err != nil {
		return nil, err
	}
	if m.notificationsTotal, err = NewCounter(meter, "aqario.notifications.sent",
		"Notification attempts by channel and outcome", "{message}"); err != nil {
		return nil, err
	}
	return m, nil
}

// InvoiceCreated records a committed invoice
func (m *DomainMetrics) InvoiceCreated(ctx context.Context, tenantID uuid.UUID, status string, total decimal.Decimal) {
	if m == nil {
		return
	}
	tenant := AttrTenantID.String(tenantID.String())
	m.invoicesCreated.Inc(ctx, tenant, AttrInvoiceStatus.String(status))
	m.invoiceAmount.Record(ctx, total.InexactFloat64(), tenant)
}

// ContractCreated records a committed contract
func (m *DomainMetrics) ContractCreated(ctx context.Context, tenantID uuid.UUID, status string) {
	if m == nil {
		return
	}
	m.contractsCreated.Inc(ctx, AttrTenantID.String(tenantID.String()), AttrContractStatus.String(status))
}

// DocumentRendered records one PDF render of kind ("invoice" or "contract")
func (m *DomainMetrics) DocumentRendered(ctx context.Context, kind string, d time.Duration, err error) {
	if m == nil {
		return
	}
	kindAttr := AttrDocumentKind.String(kind)
	m.documentsRendered.Inc(ctx, kindAttr, AttrOutcome.String(outcomeOf(err)))
	if err == nil {
		m.renderDuration.RecordDuration(ctx, d, kindAttr)
	}
}

// NotificationSent records one email or WhatsApp attempt
func (m *DomainMetrics) NotificationSent(ctx context.Context, channel string, err error) {
	if m == nil {
		return
	}
	m.notificationsTotal.Inc(ctx, AttrChannel.String(channel), AttrOutcome.String(outcomeOf(err)))
}

func outcomeOf(err error) string {
	if err != nil {
		return "failed"
	}
	return "succeeded"
}
