package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// InvoiceRenderer prints an invoice to PDF
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, inv *finance.Invoice) ([]byte, error)
}

// InvoiceDocuments keeps the stored PDF of each invoice. Repeated downloads
// return the stored bytes unchanged.
type InvoiceDocuments struct {
	invoices finance.InvoiceRepository
	renderer InvoiceRenderer
	assets   storage.AssetStorage
	metrics  *telemetry.DomainMetrics
	logger   *zap.Logger
}

// NewInvoiceDocuments creates a new InvoiceDocuments
func NewInvoiceDocuments(
	invoices finance.InvoiceRepository,
	renderer InvoiceRenderer,
	assets storage.AssetStorage,
	metrics *telemetry.DomainMetrics,
	logger *zap.Logger,
) *InvoiceDocuments {
	return &InvoiceDocuments{
		invoices: invoices,
		renderer: renderer,
		assets:   assets,
		metrics:  metrics,
		logger:   logger,
	}
}

// Ensure returns the stored PDF of inv, rendering and storing it first when
// there is none. inv should carry its contract and client.
func (d *InvoiceDocuments) Ensure(ctx context.Context, scope shared.Scope, inv *finance.Invoice) ([]byte, error) {
	if inv.PDFFile != "" {
		data, err := d.assets.Get(ctx, inv.PDFFile)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("read invoice document: %w", err)
		}
		d.logger.Warn("Stored invoice document is missing, rendering again",
			zap.String("invoice_id", inv.ID.String()),
			zap.String("key", inv.PDFFile))
	}

	start := time.Now()
	data, err := d.renderer.RenderInvoice(ctx, inv)
	d.metrics.DocumentRendered(ctx, "invoice", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.InvoiceNumber, err)
	}

	key := storage.InvoiceKey(inv.TenantID, inv.ID)
	if err := d.assets.Put(ctx, key, data, storage.ContentTypePDF); err != nil {
		return nil, fmt.Errorf("store invoice document: %w", err)
	}
	inv.AttachDocument(key)
	if err := d.invoices.Save(ctx, scope, inv); err != nil {
		return nil, err
	}
	d.logger.Info("Invoice document stored",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return data, nil
}

// Discard removes a stale document; failures are logged only
func (d *InvoiceDocuments) Discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := d.assets.Delete(ctx, key); err != nil {
		d.logger.Warn("Failed to delete invoice document", zap.String("key", key), zap.Error(err))
	}
}
