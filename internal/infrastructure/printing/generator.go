package printing

import (
	"context"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/leasing"
	"go.uber.org/zap"
)

// DocumentGenerator lays out domain documents and prints them to PDF
type DocumentGenerator struct {
	renderer PDFRenderer
	margins  Margins
	logger   *zap.Logger
}

// NewDocumentGenerator creates a generator printing A4 pages with 20mm
// margins
func NewDocumentGenerator(renderer PDFRenderer, logger *zap.Logger) *DocumentGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentGenerator{
		renderer: renderer,
		margins:  DefaultMargins(),
		logger:   logger,
	}
}

// RenderInvoice returns the invoice PDF. inv.Contract, when set, should
// carry its client.
func (g *DocumentGenerator) RenderInvoice(ctx context.Context, inv *finance.Invoice) ([]byte, error) {
	page, err := InvoiceLayout(inv)
	if err != nil {
		return nil, err
	}
	return g.render(ctx, "invoice "+inv.InvoiceNumber, page)
}

// RenderContract returns the contract PDF
func (g *DocumentGenerator) RenderContract(ctx context.Context, c *leasing.Contract) ([]byte, error) {
	page, err := ContractLayout(c)
	if err != nil {
		return nil, err
	}
	return g.render(ctx, "contract "+c.ID.String(), page)
}

func (g *DocumentGenerator) render(ctx context.Context, title, page string) ([]byte, error) {
	result, err := g.renderer.Render(ctx, &RenderRequest{
		HTML:    page,
		Title:   title,
		Paper:   PaperA4,
		Margins: g.margins,
	})
	if err != nil {
		g.logger.Warn("document rendering failed", zap.String("document", title), zap.Error(err))
		return nil, err
	}
	return result.PDFData, nil
}
