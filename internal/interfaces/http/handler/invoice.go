package handler

import (
	financeapp "github.com/aqario/backend/internal/application/finance"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *financeapp.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    newBaseHandler(logger),
		invoiceService: invoiceService,
	}
}

// invoiceFilter reads the list parameters; ?contract= narrows to one contract
func invoiceFilter(c *gin.Context) shared.Filter {
	filter := parseFilter(c, "status")
	if contract := c.Query("contract"); contract != "" {
		filter.Filters["contract_id"] = contract
	}
	return filter
}

// List godoc
// @ID           listInvoices
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        search query string false "Search invoice number and notes"
// @Param        status query string false "Status" Enums(PENDING, PAID, OVERDUE, CANCELLED)
// @Param        contract query string false "Contract ID" format(uuid)
// @Param        ordering query string false "created_at, due_date or total_amount; prefix - for descending"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]financeapp.InvoiceResponse]
// @Security     BearerAuth
// @Router       /invoices/ [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	filter := invoiceFilter(c)
	invoices, total, err := h.invoiceService.List(c.Request.Context(), scope, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getInvoice
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[financeapp.InvoiceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/ [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Create godoc
// @ID           createInvoice
// @Summary      Create invoice
// @Description  tax_amount and total_amount are derived from amount and tax_rate (default 15.00). PDF rendering, email and WhatsApp follow the commit and never fail the request.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        request body financeapp.CreateInvoiceRequest true "Invoice"
// @Success      201 {object} APIResponse[financeapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/ [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req financeapp.CreateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), scope, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Update godoc
// @ID           updateInvoice
// @Summary      Update invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Invoice ID" format(uuid)
// @Param        request body financeapp.UpdateInvoiceRequest true "Invoice fields"
// @Success      200 {object} APIResponse[financeapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/ [patch]
func (h *InvoiceHandler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req financeapp.UpdateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), scope, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Delete godoc
// @ID           deleteInvoice
// @Summary      Delete invoice
// @Tags         invoices
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/ [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), scope, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DownloadPDF godoc
// @ID           downloadInvoicePdf
// @Summary      Download invoice PDF
// @Description  Generated and stored on first download; later downloads return the same bytes
// @Tags         invoices
// @Produce      application/pdf
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/download_pdf/ [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.invoiceService.DownloadPDF(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	attachment(c, filename, contentTypePDF, data)
}

// Export godoc
// @ID           exportInvoices
// @Summary      Export invoices
// @Description  XLSX workbook of the invoices matching the list filters, at most 10000 rows
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        search query string false "Search invoice number and notes"
// @Param        status query string false "Status" Enums(PENDING, PAID, OVERDUE, CANCELLED)
// @Param        ordering query string false "created_at, due_date or total_amount; prefix - for descending"
// @Success      200 {file} file
// @Security     BearerAuth
// @Router       /invoices/export/ [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	filter := invoiceFilter(c)
	data, err := h.invoiceService.Export(c.Request.Context(), scope, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	attachment(c, "invoices.xlsx", contentTypeXLSX, data)
}
