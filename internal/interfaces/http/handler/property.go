package handler

import (
	propertyapp "github.com/aqario/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler handles property endpoints of the selected tenant
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *propertyapp.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     newBaseHandler(logger),
		propertyService: propertyService,
	}
}

// List godoc
// @ID           listProperties
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        search query string false "Search title and location"
// @Param        property_type query string false "Property type" Enums(APARTMENT, VILLA, OFFICE, SHOP, LAND)
// @Param        ordering query string false "price or created_at; prefix - for descending" default(-created_at)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/ [get]
func (h *PropertyHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	filter := parseFilter(c, "property_type")
	properties, total, err := h.propertyService.List(c.Request.Context(), scope, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, properties, total, filter.Page, filter.PageSize)
}

// Get godoc
// @ID           getProperty
// @Summary      Get property
// @Tags         properties
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/ [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.Get(c.Request.Context(), scope, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, property)
}

// Create godoc
// @ID           createProperty
// @Summary      Create property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        request body propertyapp.CreatePropertyRequest true "Property"
// @Success      201 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/ [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req propertyapp.CreatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), scope, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, property)
}

// Update godoc
// @ID           updateProperty
// @Summary      Update property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.UpdatePropertyRequest true "Property fields"
// @Success      200 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/ [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.UpdatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), scope, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, property)
}

// Delete godoc
// @ID           deleteProperty
// @Summary      Delete property
// @Description  Contracts of the property and their invoices are deleted with it
// @Tags         properties
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Property ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/ [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), scope, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UploadImage godoc
// @ID           uploadPropertyImage
// @Summary      Upload property image
// @Tags         properties
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Property ID" format(uuid)
// @Param        image formData file true "PNG, JPEG or WebP image"
// @Success      200 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/image/ [post]
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	filename, data, ok := h.readUpload(c, "image")
	if !ok {
		return
	}

	property, err := h.propertyService.UploadImage(c.Request.Context(), scope, id, filename, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, property)
}
