package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/catalog"
)

// Machine-readable error codes.
const (
	CodeInvalidBody  = "invalid_body"
	CodeInvalidQuery = "invalid_query"
	CodeInvalidID    = "invalid_id"
	CodeValidation   = "validation_error"
	CodeConflict     = "conflict"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal_error"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data    any   `json:"data"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: code})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: CodeInternal})
}

// respondError translates a catalog error into its status code and body.
func respondError(c *gin.Context, err error, context string) {
	var cerr *catalog.Error
	if !errors.As(err, &cerr) || cerr.Kind == catalog.KindInternal {
		respondInternalError(c, err, context)
		return
	}

	resp := ErrorResponse{Error: cerr.Message}
	switch cerr.Kind {
	case catalog.KindValidation:
		resp.Code = CodeValidation
		resp.Details = cerr.Fields
	case catalog.KindConflict:
		resp.Code = CodeConflict
	case catalog.KindNotFound:
		resp.Code = CodeNotFound
	}
	c.JSON(cerr.StatusCode(), resp)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, CodeInvalidID, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseQueryInt reads an optional integer query parameter. An absent
// parameter yields nil. Responds with a 400 error when the value is not an
// integer.
func parseQueryInt(c *gin.Context, name string) (*int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, CodeInvalidQuery, "query parameter '"+name+"' must be an integer")
		return nil, false
	}
	return &v, true
}

// parseQueryString reads an optional string query parameter.
func parseQueryString(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &raw
}
