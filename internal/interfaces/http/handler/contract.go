package handler

import (
	leasingapp "github.com/aqario/backend/internal/application/leasing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contentTypePDF = "application/pdf"

// ContractHandler handles rental contract endpoints
type ContractHandler struct {
	BaseHandler
	contractService *leasingapp.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *leasingapp.ContractService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		BaseHandler:     newBaseHandler(logger),
		contractService: contractService,
	}
}

// List godoc
// @ID           listContracts
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        search query string false "Search property title and client name"
// @Param        status query string false "Status" Enums(ACTIVE, EXPIRED, TERMINATED)
// @Param        ordering query string false "created_at, start_date, end_date or total_amount; prefix - for descending"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]leasingapp.ContractResponse]
// @Security     BearerAuth
// @Router       /contracts/ [get]
func (h *ContractHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	filter := parseFilter(c, "status")
	contracts, total, err := h.contractService.List(c.Request.Context(), scope, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, contracts, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getContract
// @Summary      Get contract
// @Tags         contracts
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} APIResponse[leasingapp.ContractResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contracts/{id}/ [get]
func (h *ContractHandler) Get(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	contract, err := h.contractService.Get(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// Create godoc
// @ID           createContract
// @Summary      Create contract
// @Description  Property and client must belong to the selected tenant. The PDF and notifications follow the commit and never fail the request.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        request body leasingapp.CreateContractRequest true "Contract"
// @Success      201 {object} APIResponse[leasingapp.ContractResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contracts/ [post]
func (h *ContractHandler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req leasingapp.CreateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), scope, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contract)
}

// Update godoc
// @ID           updateContract
// @Summary      Update contract
// @Description  The stored PDF is discarded and regenerated on the next download
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Contract ID" format(uuid)
// @Param        request body leasingapp.UpdateContractRequest true "Contract fields"
// @Success      200 {object} APIResponse[leasingapp.ContractResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contracts/{id}/ [patch]
func (h *ContractHandler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req leasingapp.UpdateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Update(c.Request.Context(), scope, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contract)
}

// Delete godoc
// @ID           deleteContract
// @Summary      Delete contract
// @Tags         contracts
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Contract ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contracts/{id}/ [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), scope, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DownloadPDF godoc
// @ID           downloadContractPdf
// @Summary      Download contract PDF
// @Tags         contracts
// @Produce      application/pdf
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /contracts/{id}/download_pdf/ [get]
func (h *ContractHandler) DownloadPDF(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.contractService.DownloadPDF(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	attachment(c, filename, contentTypePDF, data)
}
