// Package audit records the history of catalog mutations.
package audit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/requestid"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const entityBook = "book"

// EventStore persists and queries audit events.
type EventStore interface {
	LogEvent(ctx context.Context, event *entities.AuditEvent) error
	GetEvents(ctx context.Context, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsForEntity(ctx context.Context, entityType string, entityID uint, limit, offset int) ([]entities.AuditEvent, int64, error)
	DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error)
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo    EventStore
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo EventStore) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event synchronously.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	if event.RequestID == "" {
		event.RequestID = requestid.FromContext(ctx)
	}
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
// The write does not inherit the caller's cancellation.
func (s *Service) LogAsync(ctx context.Context, event *entities.AuditEvent) {
	if event.RequestID == "" {
		event.RequestID = requestid.FromContext(ctx)
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(context.Background(), event); err != nil {
			log.Printf("[AUDIT] Failed to log audit event %s: %v", event.Action, err)
		}
	}()
}

// Wait blocks until every LogAsync write has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// LogCreate records a book creation.
func (s *Service) LogCreate(ctx context.Context, book entities.Book) {
	s.LogAsync(ctx, bookEvent(entities.AuditEventCreate, book,
		"Created book: "+book.String(), map[string]any{
			"title":  book.Title,
			"author": book.Author,
			"year":   book.Year,
		}))
}

// LogUpdate records a book update and the fields it touched.
func (s *Service) LogUpdate(ctx context.Context, book entities.Book, fields []string) {
	s.LogAsync(ctx, bookEvent(entities.AuditEventUpdate, book,
		"Updated book: "+book.String(), map[string]any{
			"fields": fields,
		}))
}

// LogDelete records a book deletion.
func (s *Service) LogDelete(ctx context.Context, book entities.Book) {
	s.LogAsync(ctx, bookEvent(entities.AuditEventDelete, book,
		"Deleted book: "+book.String(), nil))
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, limit, offset)
}

// GetBookHistory retrieves the events recorded for one book.
func (s *Service) GetBookHistory(ctx context.Context, bookID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsForEntity(ctx, entityBook, bookID, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

func bookEvent(eventType entities.AuditEventType, book entities.Book, description string, metadata map[string]any) *entities.AuditEvent {
	id := book.ID
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      fmt.Sprintf("%s_%s", entityBook, eventType),
		Description: truncate(description, 500),
		EntityType:  entityBook,
		EntityID:    &id,
		Status:      entities.AuditStatusSuccess,
	}

	if metadata != nil {
		if mdBytes, err := json.Marshal(metadata); err == nil {
			event.Metadata = string(mdBytes)
		}
	}
	return event
}

// truncate shortens a string to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
