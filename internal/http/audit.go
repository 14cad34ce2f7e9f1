package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/entities"
)

const (
	defaultAuditLimit = 25
	maxAuditLimit     = 100
)

// AuditReader lists recorded mutation events.
type AuditReader interface {
	GetEvents(ctx context.Context, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetBookHistory(ctx context.Context, bookID uint, limit, offset int) ([]entities.AuditEvent, int64, error)
}

type AuditController struct {
	reader AuditReader
}

func NewAuditController(reader AuditReader) *AuditController {
	return &AuditController{
		reader: reader,
	}
}

// GetAuditEvents returns paginated audit events as JSON
// GET /api/audit
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, offset, ok := parseAuditPage(c)
	if !ok {
		return
	}

	events, total, err := ac.reader.GetEvents(c.Request.Context(), limit, offset)
	if err != nil {
		respondInternalError(c, err, "audit events")
		return
	}
	respondEvents(c, events, total, limit, offset)
}

// GetBookHistory returns the audit events recorded for one book.
// Deleted books keep their history.
// GET /api/books/:id/history
func (ac *AuditController) GetBookHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, offset, ok := parseAuditPage(c)
	if !ok {
		return
	}

	events, total, err := ac.reader.GetBookHistory(c.Request.Context(), id, limit, offset)
	if err != nil {
		respondInternalError(c, err, "book history")
		return
	}
	respondEvents(c, events, total, limit, offset)
}

func parseAuditPage(c *gin.Context) (limit, offset int, ok bool) {
	limitParam, ok := parseQueryInt(c, "limit")
	if !ok {
		return 0, 0, false
	}
	offsetParam, ok := parseQueryInt(c, "offset")
	if !ok {
		return 0, 0, false
	}

	limit, offset = defaultAuditLimit, 0
	if limitParam != nil {
		limit = *limitParam
	}
	if offsetParam != nil {
		offset = *offsetParam
	}
	if limit < 1 || limit > maxAuditLimit {
		respondBadRequest(c, CodeInvalidQuery, "limit must be between 1 and 100")
		return 0, 0, false
	}
	if offset < 0 {
		respondBadRequest(c, CodeInvalidQuery, "offset must be greater than or equal to 0")
		return 0, 0, false
	}
	return limit, offset, true
}

func respondEvents(c *gin.Context, events []entities.AuditEvent, total int64, limit, offset int) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}
