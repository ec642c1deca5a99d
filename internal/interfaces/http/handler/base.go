package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	identityapp "github.com/aqario/backend/internal/application/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/aqario/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct {
	logger *zap.Logger
}

func newBaseHandler(logger *zap.Logger) BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseHandler{logger: logger}
}

// getRequestID extracts the request ID set by the RequestID middleware
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorWithCode sends an error response, deriving the status from the code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.errorWithDetails(c, code, message, nil)
}

func (h *BaseHandler) errorWithDetails(c *gin.Context, code, message string, details map[string]string) {
	c.Set(middleware.ErrorCodeKey, code)
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithDetails(code, message, getRequestID(c), details))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.ErrorWithCode(c, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context) {
	h.ErrorWithCode(c, dto.ErrCodeNotFound, shared.ErrNotFound.Message)
}

// HandleError converts domain, binding and unexpected errors to responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.errorWithDetails(c, domainErr.Code, domainErr.Message, domainErr.Details)
		return
	}

	h.logger.Error("Unhandled error",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	h.ErrorWithCode(c, dto.ErrCodeInternal, "An unexpected error occurred")
}

// handleBindError reports a request body that failed to decode or validate
func (h *BaseHandler) handleBindError(c *gin.Context, err error) {
	if details := middleware.ValidationDetails(err); details != nil {
		h.errorWithDetails(c, dto.ErrCodeValidation, "Request validation failed", details)
		return
	}

	var (
		maxBytes   *http.MaxBytesError
		syntaxErr  *json.SyntaxError
		typeErr    *json.UnmarshalTypeError
		parseError = "Malformed request body"
	)
	switch {
	case errors.As(err, &maxBytes):
		h.ErrorWithCode(c, dto.ErrCodeRequestTooLarge, "Request body too large")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		h.errorWithDetails(c, dto.ErrCodeValidation, "Request validation failed",
			map[string]string{typeErr.Field: "Invalid type, expected " + typeErr.Type.String()})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		h.ErrorWithCode(c, dto.ErrCodeBadRequest, parseError)
	default:
		h.ErrorWithCode(c, dto.ErrCodeBadRequest, parseError+": "+err.Error())
	}
}

// bindJSON decodes and validates the body into req, writing the error
// response on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.handleBindError(c, err)
		return false
	}
	return true
}

// pathID parses a uuid path parameter. Malformed ids are reported as not
// found, the same as ids that do not exist.
func (h *BaseHandler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.NotFound(c)
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated caller
func (h *BaseHandler) actor(c *gin.Context) (identityapp.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeUnauthorized, "Authentication credentials were not provided")
	}
	return actor, ok
}

// scope returns the tenant scope selected by the tenant middleware
func (h *BaseHandler) scope(c *gin.Context) (shared.Scope, bool) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		h.ErrorWithCode(c, dto.ErrCodeTenantRequired, "X-Tenant-ID header is required")
	}
	return scope, ok
}

// readUpload reads a multipart file field into memory
func (h *BaseHandler) readUpload(c *gin.Context, field string) (string, []byte, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			h.ErrorWithCode(c, dto.ErrCodeRequestTooLarge, "Request body too large")
			return "", nil, false
		}
		h.HandleError(c, shared.NewValidationError(field, "No file was submitted"))
		return "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		h.HandleError(c, err)
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.HandleError(c, err)
		return "", nil, false
	}
	if len(data) == 0 {
		h.HandleError(c, shared.NewValidationError(field, "The submitted file is empty"))
		return "", nil, false
	}
	return fh.Filename, data, true
}

// attachment writes a binary download
func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// parseFilter reads the list query parameters: page, page_size (max 100),
// search, ordering ("field" ascending, "-field" descending) and the equality
// filters named in filterKeys. Unparseable paging values fall back to the
// defaults.
func parseFilter(c *gin.Context, filterKeys ...string) shared.Filter {
	filter := shared.DefaultFilter()

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filter.PageSize = size
	}
	filter.Search = strings.TrimSpace(c.Query("search"))

	if ordering := strings.TrimSpace(c.Query("ordering")); ordering != "" {
		// only the first key of a comma separated list is honoured
		ordering = strings.TrimSpace(strings.SplitN(ordering, ",", 2)[0])
		if field, desc := strings.CutPrefix(ordering, "-"); desc {
			filter.OrderBy, filter.OrderDir = field, "desc"
		} else {
			filter.OrderBy, filter.OrderDir = ordering, "asc"
		}
	}

	for _, key := range filterKeys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			filter.Filters[key] = v
		}
	}
	return filter.Normalize()
}
