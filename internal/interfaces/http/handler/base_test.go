package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	identityapp "github.com/aqario/backend/internal/application/identity"
	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/aqario/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newContext(method, target string, body *bytes.Buffer) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body == nil {
		body = &bytes.Buffer{}
	}
	c.Request = httptest.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestGetRequestID(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/", nil)
	assert.Empty(t, getRequestID(c))

	c.Request.Header.Set("X-Request-ID", "header-id")
	assert.Equal(t, "header-id", getRequestID(c))

	c.Set(middleware.RequestIDKey, "ctx-id")
	assert.Equal(t, "ctx-id", getRequestID(c))
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		keys     []string
		page     int
		pageSize int
		orderBy  string
		orderDir string
		search   string
		filters  map[string]interface{}
	}{
		{
			name: "defaults", query: "",
			page: 1, pageSize: 20, orderBy: "created_at", orderDir: "desc",
			filters: map[string]interface{}{},
		},
		{
			name: "descending ordering", query: "?ordering=-price&page=3&page_size=5",
			page: 3, pageSize: 5, orderBy: "price", orderDir: "desc",
			filters: map[string]interface{}{},
		},
		{
			name: "ascending ordering uses the first key", query: "?ordering=name,-created_at",
			page: 1, pageSize: 20, orderBy: "name", orderDir: "asc",
			filters: map[string]interface{}{},
		},
		{
			name: "page size capped", query: "?page_size=500&page=0",
			page: 1, pageSize: 100, orderBy: "created_at", orderDir: "desc",
			filters: map[string]interface{}{},
		},
		{
			name: "non numeric paging falls back", query: "?page=abc&page_size=x",
			page: 1, pageSize: 20, orderBy: "created_at", orderDir: "desc",
			filters: map[string]interface{}{},
		},
		{
			name: "search and filters", query: "?search=+villa+&property_type=VILLA&status=",
			keys: []string{"property_type", "status"},
			page: 1, pageSize: 20, orderBy: "created_at", orderDir: "desc", search: "villa",
			filters: map[string]interface{}{"property_type": "VILLA"},
		},
		{
			name: "unknown query keys ignored", query: "?role=ADMIN",
			page: 1, pageSize: 20, orderBy: "created_at", orderDir: "desc",
			filters: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodGet, "/items/"+tt.query, nil)
			f := parseFilter(c, tt.keys...)
			assert.Equal(t, tt.page, f.Page)
			assert.Equal(t, tt.pageSize, f.PageSize)
			assert.Equal(t, tt.orderBy, f.OrderBy)
			assert.Equal(t, tt.orderDir, f.OrderDir)
			assert.Equal(t, tt.search, f.Search)
			assert.Equal(t, tt.filters, f.Filters)
		})
	}
}

func TestInvoiceFilter_ContractParam(t *testing.T) {
	id := uuid.New().String()
	c, _ := newContext(http.MethodGet, "/invoices/?contract="+id+"&status=PAID", nil)
	f := invoiceFilter(c)
	assert.Equal(t, id, f.Filters["contract_id"])
	assert.Equal(t, "PAID", f.Filters["status"])
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		details map[string]string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil},
		{"wrapped not found", errors.Join(errors.New("load"), shared.ErrNotFound), http.StatusNotFound, "NOT_FOUND", "Resource not found", nil},
		{"validation", shared.NewValidationError("end_date", "End date must be after start date"),
			http.StatusBadRequest, "VALIDATION_ERROR", "End date must be after start date",
			map[string]string{"end_date": "End date must be after start date"}},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "Access to this resource is forbidden", nil},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil},
	}

	h := newBaseHandler(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "/", nil)
			c.Set(middleware.RequestIDKey, "req-1")
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, c.GetString(middleware.ErrorCodeKey))
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, tt.details, resp.Error.Details)
			assert.Equal(t, "req-1", resp.Error.RequestID)
		})
	}
}

type bindSample struct {
	Name  string `json:"name" binding:"required,max=10"`
	Count int    `json:"count"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    string
		message string
		details map[string]string
	}{
		{"missing required", `{"count":1}`, "VALIDATION_ERROR", "Request validation failed",
			map[string]string{"name": "This field is required"}},
		{"too long", `{"name":"abcdefghijkl"}`, "VALIDATION_ERROR", "Request validation failed",
			map[string]string{"name": "Ensure this field has no more than 10 characters"}},
		{"wrong type", `{"name":"ok","count":"three"}`, "VALIDATION_ERROR", "Request validation failed",
			map[string]string{"count": "Invalid type, expected int"}},
		{"syntax", `{"name":`, "BAD_REQUEST", "Malformed request body", nil},
		{"empty", ``, "BAD_REQUEST", "Malformed request body", nil},
	}

	h := newBaseHandler(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			var req bindSample
			assert.False(t, h.bindJSON(c, &req))

			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, tt.details, resp.Error.Details)
		})
	}

	t.Run("valid", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/", bytes.NewBufferString(`{"name":"ok","count":2}`))
		var req bindSample
		require.True(t, h.bindJSON(c, &req))
		assert.Equal(t, bindSample{Name: "ok", Count: 2}, req)
	})

	t.Run("too large", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/", bytes.NewBufferString(`{"name":"`+strings.Repeat("a", 64)+`"}`))
		c.Request.Body = http.MaxBytesReader(w, c.Request.Body, 16)
		var req bindSample
		assert.False(t, h.bindJSON(c, &req))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestPathID(t *testing.T) {
	h := newBaseHandler(nil)
	id := uuid.New()

	c, _ := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, ok := h.pathID(c, "id")
	require.True(t, ok)
	assert.Equal(t, id, got)

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	_, ok = h.pathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActorAndScope(t *testing.T) {
	h := newBaseHandler(nil)

	c, w := newContext(http.MethodGet, "/", nil)
	_, ok := h.actor(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newContext(http.MethodGet, "/", nil)
	_, ok = h.scope(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "TENANT_REQUIRED", decodeResponse(t, w).Error.Code)

	tenantID := uuid.New()
	c, _ = newContext(http.MethodGet, "/", nil)
	c.Set(middleware.ActorKey, identityapp.Actor{UserID: uuid.New(), Role: identity.RoleEmployee, TenantID: &tenantID})
	c.Set(middleware.ScopeKey, shared.MustScope(tenantID))
	actor, ok := h.actor(c)
	require.True(t, ok)
	assert.Equal(t, identity.RoleEmployee, actor.Role)
	scope, ok := h.scope(c)
	require.True(t, ok)
	assert.Equal(t, tenantID, scope.TenantID())
}

func multipartContext(t *testing.T, field, filename string, data []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	c, w := newContext(http.MethodPost, "/", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestReadUpload(t *testing.T) {
	h := newBaseHandler(nil)

	c, _ := multipartContext(t, "image", "front.png", []byte("\x89PNG data"))
	name, data, ok := h.readUpload(c, "image")
	require.True(t, ok)
	assert.Equal(t, "front.png", name)
	assert.Equal(t, []byte("\x89PNG data"), data)

	c, w := multipartContext(t, "", "", nil)
	_, _, ok = h.readUpload(c, "image")
	assert.False(t, ok)
	resp := decodeResponse(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "image")

	c, w = multipartContext(t, "logo", "empty.png", nil)
	_, _, ok = h.readUpload(c, "logo")
	assert.False(t, ok)
	assert.Equal(t, "The submitted file is empty", decodeResponse(t, w).Error.Details["logo"])
}

func TestAttachment(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil)
	attachment(c, "invoice_INV-1.pdf", contentTypePDF, []byte("%PDF"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice_INV-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", w.Body.String())
}

func TestSuccessWithMeta(t *testing.T) {
	h := newBaseHandler(nil)
	c, w := newContext(http.MethodGet, "/", nil)
	h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 20)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, dto.Meta{Total: 45, Page: 2, PageSize: 20, TotalPages: 3}, *resp.Meta)
}
