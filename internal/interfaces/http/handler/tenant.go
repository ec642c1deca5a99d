package handler

import (
	identityapp "github.com/aqario/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantHandler handles tenant administration endpoints. Visibility rules
// (SUPERADMIN sees every tenant, others only their own) live in the service.
type TenantHandler struct {
	BaseHandler
	tenantService *identityapp.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *identityapp.TenantService, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{
		BaseHandler:   newBaseHandler(logger),
		tenantService: tenantService,
	}
}

// List godoc
// @ID           listTenants
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Param        search query string false "Search name and subdomain"
// @Param        ordering query string false "created_at, name or subdomain; prefix - for descending"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]identityapp.TenantResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/ [get]
func (h *TenantHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	filter := parseFilter(c)
	tenants, total, err := h.tenantService.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, tenants, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getTenant
// @Summary      Get tenant
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      200 {object} APIResponse[identityapp.TenantResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/ [get]
func (h *TenantHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// Create godoc
// @ID           createTenant
// @Summary      Create tenant
// @Description  SUPERADMIN only
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateTenantRequest true "Tenant"
// @Success      201 {object} APIResponse[identityapp.TenantResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/ [post]
func (h *TenantHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req identityapp.CreateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tenant)
}

// Update godoc
// @ID           updateTenant
// @Summary      Update tenant
// @Description  PUT and PATCH both apply the fields present in the body
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Param        request body identityapp.UpdateTenantRequest true "Tenant fields"
// @Success      200 {object} APIResponse[identityapp.TenantResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/ [patch]
func (h *TenantHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req identityapp.UpdateTenantRequest
	if !h.bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// Delete godoc
// @ID           deleteTenant
// @Summary      Delete tenant
// @Description  SUPERADMIN only; removes every record of the tenant
// @Tags         tenants
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/ [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UploadLogo godoc
// @ID           uploadTenantLogo
// @Summary      Upload tenant logo
// @Tags         tenants
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Param        logo formData file true "PNG, JPEG, WebP or SVG image"
// @Success      200 {object} APIResponse[identityapp.TenantResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tenants/{id}/logo/ [post]
func (h *TenantHandler) UploadLogo(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	filename, data, ok := h.readUpload(c, "logo")
	if !ok {
		return
	}

	tenant, err := h.tenantService.UploadLogo(c.Request.Context(), actor, id, filename, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}
