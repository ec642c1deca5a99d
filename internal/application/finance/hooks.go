package finance

import (
	"context"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/notification"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
)

// Post-commit hook names for invoice.created, in run order
const (
	HookInvoicePDF      = "invoice_pdf"
	HookInvoiceEmail    = "invoice_email"
	HookInvoiceWhatsApp = "invoice_whatsapp"
)

var invoiceEvents = []string{finance.EventTypeInvoiceCreated}

func loadInvoice(ctx context.Context, invoices finance.InvoiceRepository, evt shared.DomainEvent) (shared.Scope, *finance.Invoice, error) {
	scope, err := shared.NewScope(evt.TenantID())
	if err != nil {
		return shared.Scope{}, nil, err
	}
	inv, err := invoices.FindByIDWithRelations(ctx, scope, evt.AggregateID())
	if err != nil {
		return shared.Scope{}, nil, err
	}
	return scope, inv, nil
}

// InvoicePDFHook renders and stores the document of a new invoice
type InvoicePDFHook struct {
	invoices  finance.InvoiceRepository
	documents *InvoiceDocuments
}

// NewInvoicePDFHook creates a new InvoicePDFHook
func NewInvoicePDFHook(invoices finance.InvoiceRepository, documents *InvoiceDocuments) *InvoicePDFHook {
	return &InvoicePDFHook{invoices: invoices, documents: documents}
}

func (h *InvoicePDFHook) Name() string         { return HookInvoicePDF }
func (h *InvoicePDFHook) EventTypes() []string { return invoiceEvents }

// Handle implements shared.PostCommitHook
func (h *InvoicePDFHook) Handle(ctx context.Context, evt shared.DomainEvent) error {
	scope, inv, err := loadInvoice(ctx, h.invoices, evt)
	if err != nil {
		return err
	}
	_, err = h.documents.Ensure(ctx, scope, inv)
	return err
}

// InvoiceEmailHook emails the client of a new invoice. Invoices without a
// contract, or whose client has no email address, are skipped.
type InvoiceEmailHook struct {
	invoices finance.InvoiceRepository
	mailer   notification.Mailer
	metrics  *telemetry.DomainMetrics
}

// NewInvoiceEmailHook creates a new InvoiceEmailHook
func NewInvoiceEmailHook(invoices finance.InvoiceRepository, mailer notification.Mailer, metrics *telemetry.DomainMetrics) *InvoiceEmailHook {
	return &InvoiceEmailHook{invoices: invoices, mailer: mailer, metrics: metrics}
}

func (h *InvoiceEmailHook) Name() string         { return HookInvoiceEmail }
func (h *InvoiceEmailHook) EventTypes() []string { return invoiceEvents }

// Handle implements shared.PostCommitHook
func (h *InvoiceEmailHook) Handle(ctx context.Context, evt shared.DomainEvent) error {
	if !h.mailer.Enabled() {
		return shared.ErrHookSkipped
	}
	_, inv, err := loadInvoice(ctx, h.invoices, evt)
	if err != nil {
		return err
	}
	msg, ok, err := notification.InvoiceEmail(inv)
	if err != nil {
		return err
	}
	if !ok {
		return shared.ErrHookSkipped
	}
	err = h.mailer.Send(ctx, msg)
	h.metrics.NotificationSent(ctx, "email", err)
	return err
}

// InvoiceWhatsAppHook sends a WhatsApp message to the client of a new invoice
type InvoiceWhatsAppHook struct {
	invoices finance.InvoiceRepository
	sender   notification.WhatsAppSender
	metrics  *telemetry.DomainMetrics
}

// NewInvoiceWhatsAppHook creates a new InvoiceWhatsAppHook
func NewInvoiceWhatsAppHook(invoices finance.InvoiceRepository, sender notification.WhatsAppSender, metrics *telemetry.DomainMetrics) *InvoiceWhatsAppHook {
	return &InvoiceWhatsAppHook{invoices: invoices, sender: sender, metrics: metrics}
}

func (h *InvoiceWhatsAppHook) Name() string         { return HookInvoiceWhatsApp }
func (h *InvoiceWhatsAppHook) EventTypes() []string { return invoiceEvents }

// Handle implements shared.PostCommitHook
func (h *InvoiceWhatsAppHook) Handle(ctx context.Context, evt shared.DomainEvent) error {
	if !h.sender.Enabled() {
		return shared.ErrHookSkipped
	}
	_, inv, err := loadInvoice(ctx, h.invoices, evt)
	if err != nil {
		return err
	}
	to, body, ok, err := notification.InvoiceWhatsApp(inv)
	if err != nil {
		return err
	}
	if !ok {
		return shared.ErrHookSkipped
	}
	err = h.sender.Send(ctx, to, body)
	h.metrics.NotificationSent(ctx, "whatsapp", err)
	return err
}
