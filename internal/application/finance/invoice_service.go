package finance

import (
	"context"
	"errors"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/export"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxExportRows caps the number of invoices in one spreadsheet export
const MaxExportRows = 10000

var errNumberTaken = shared.NewDomainError("ALREADY_EXISTS", "An invoice with this number already exists").
	WithDetail("invoice_number", "An invoice with this number already exists")

// InvoiceService handles the invoice lifecycle inside a tenant scope
type InvoiceService struct {
	invoices  finance.InvoiceRepository
	contracts leasing.Repository
	documents *InvoiceDocuments
	hooks     shared.HookRunner
	metrics   *telemetry.DomainMetrics
	logger    *zap.Logger
}

// NewInvoiceService creates a new InvoiceService. hooks may be nil.
func NewInvoiceService(
	invoices finance.InvoiceRepository,
	contracts leasing.Repository,
	documents *InvoiceDocuments,
	hooks shared.HookRunner,
	metrics *telemetry.DomainMetrics,
	logger *zap.Logger,
) *InvoiceService {
	if hooks == nil {
		hooks = shared.NopHookRunner{}
	}
	return &InvoiceService{
		invoices:  invoices,
		contracts: contracts,
		documents: documents,
		hooks:     hooks,
		metrics:   metrics,
		logger:    logger,
	}
}

// List returns a page of the tenant's invoices, newest first by default
func (s *InvoiceService) List(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]InvoiceResponse, int64, error) {
	invoices, total, err := s.invoices.FindAll(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out, total, nil
}

// Get returns one invoice with its contract and client
func (s *InvoiceService) Get(ctx context.Context, scope shared.Scope, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoices.FindByIDWithRelations(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// Create persists an invoice with derived tax and total, then runs the
// post-commit hooks: PDF, email and WhatsApp. Hook failures are recorded
// as outcomes and never fail the call.
func (s *InvoiceService) Create(ctx context.Context, scope shared.Scope, req CreateInvoiceRequest) (result *InvoiceResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "InvoiceService", "Create")
	defer func() { telemetry.EndSpan(span, err) }()

	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureNumberFree(ctx, req.InvoiceNumber, uuid.Nil); err != nil {
		return nil, err
	}
	contract, err := s.resolveContract(ctx, scope, req.Contract)
	if err != nil {
		return nil, err
	}
	status, err := finance.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil {
		return nil, shared.NewValidationError("amount", "This field is required")
	}
	taxRate := finance.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	inv, err := finance.NewInvoice(scope, contract, finance.Details{
		InvoiceNumber: req.InvoiceNumber,
		Amount:        *req.Amount,
		TaxRate:       taxRate,
		DueDate:       req.DueDate.Time,
		PaidDate:      req.PaidDate.TimePtr(),
		Status:        status,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := s.invoices.Save(ctx, scope, inv); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, errNumberTaken
		}
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("tenant_id", scope.String()),
		zap.String("total_amount", inv.TotalAmount.StringFixed(2)))
	s.metrics.InvoiceCreated(ctx, scope.TenantID(), string(inv.Status), inv.TotalAmount)

	s.hooks.Run(ctx, inv.PullDomainEvents()...)

	// hooks may have attached the document
	if fresh, err := s.invoices.FindByIDWithRelations(ctx, scope, inv.ID); err == nil {
		inv = fresh
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// Update applies a partial update and recomputes tax and total. Any change
// discards the stored document.
func (s *InvoiceService) Update(ctx context.Context, scope shared.Scope, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.invoices.FindByIDWithRelations(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	var stale []string
	switch {
	case req.ClearContract:
		if err := inv.LinkContract(scope, nil); err != nil {
			return nil, err
		}
		stale = append(stale, inv.InvalidateDocument())
	case req.Contract != nil:
		contract, err := s.resolveContract(ctx, scope, req.Contract)
		if err != nil {
			return nil, err
		}
		if err := inv.LinkContract(scope, contract); err != nil {
			return nil, err
		}
		stale = append(stale, inv.InvalidateDocument())
	}

	d := detailsOf(inv)
	if req.InvoiceNumber != nil && *req.InvoiceNumber != inv.InvoiceNumber {
		if err := s.ensureNumberFree(ctx, *req.InvoiceNumber, inv.ID); err != nil {
			return nil, err
		}
		d.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Amount != nil {
		d.Amount = *req.Amount
	}
	if req.TaxRate != nil {
		d.TaxRate = *req.TaxRate
	}
	if req.DueDate != nil {
		d.DueDate = req.DueDate.Time
	}
	if req.PaidDate != nil {
		d.PaidDate = req.PaidDate.TimePtr()
	}
	if req.Status != nil {
		if d.Status, err = finance.ParseStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}
	old, err := inv.Update(d)
	if err != nil {
		return nil, err
	}
	stale = append(stale, old)

	if err := s.invoices.Save(ctx, scope, inv); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, errNumberTaken
		}
		return nil, err
	}
	for _, key := range stale {
		s.documents.Discard(ctx, key)
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// Delete removes an invoice and its stored document
func (s *InvoiceService) Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error {
	inv, err := s.invoices.FindByID(ctx, scope, id)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.documents.Discard(ctx, inv.PDFFile)
	s.logger.Info("Invoice deleted",
		zap.String("invoice_id", id.String()),
		zap.String("tenant_id", scope.String()))
	return nil
}

// DownloadPDF returns the invoice document, generating and storing it on
// first use. Later calls return the stored bytes.
func (s *InvoiceService) DownloadPDF(ctx context.Context, scope shared.Scope, id uuid.UUID) ([]byte, string, error) {
	inv, err := s.invoices.FindByIDWithRelations(ctx, scope, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.documents.Ensure(ctx, scope, inv)
	if err != nil {
		return nil, "", err
	}
	return data, "invoice_" + inv.InvoiceNumber + ".pdf", nil
}

// Export writes the invoices matching filter to an XLSX workbook. Paging
// fields of filter are ignored.
func (s *InvoiceService) Export(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]byte, error) {
	filter.Page = 1
	filter.PageSize = 100

	var all []finance.Invoice
	for len(all) < MaxExportRows {
		page, total, err := s.invoices.FindAll(ctx, scope, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || int64(len(all)) >= total {
			break
		}
		filter.Page++
	}
	if len(all) > MaxExportRows {
		all = all[:MaxExportRows]
	}

	contracts := make(map[uuid.UUID]*leasing.Contract)
	for i := range all {
		id := all[i].ContractID
		if id == nil {
			continue
		}
		c, ok := contracts[*id]
		if !ok {
			loaded, err := s.contracts.FindByIDWithRelations(ctx, scope, *id)
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			c = loaded
			contracts[*id] = c
		}
		all[i].Contract = c
	}

	data, err := export.InvoiceWorkbook(all)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invoices exported",
		zap.String("tenant_id", scope.String()),
		zap.Int("rows", len(all)))
	return data, nil
}

func (s *InvoiceService) ensureNumberFree(ctx context.Context, number string, excludeID uuid.UUID) error {
	taken, err := s.invoices.NumberTaken(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errNumberTaken
	}
	return nil
}

func (s *InvoiceService) resolveContract(ctx context.Context, scope shared.Scope, id *uuid.UUID) (*leasing.Contract, error) {
	if id == nil {
		return nil, nil
	}
	c, err := s.contracts.FindByIDWithRelations(ctx, scope, *id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidReference.WithDetail("contract", "Contract does not exist in this tenant")
		}
		return nil, err
	}
	return c, nil
}
