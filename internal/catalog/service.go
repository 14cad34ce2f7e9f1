// Package catalog orchestrates validation, query building and the record
// store, and translates every failure into an *Error with a status code.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/query"
	"github.com/mrlokans/catalog/internal/validation"
)

// Store is the durable book storage the service depends on.
type Store interface {
	Create(ctx context.Context, book entities.Book) (*entities.Book, error)
	Get(ctx context.Context, id uint) (*entities.Book, error)
	List(ctx context.Context, stmt query.Statement) ([]entities.Book, error)
	Update(ctx context.Context, id uint, patch books.Patch) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// AuditLogger records successful mutations. Implementations must not block.
type AuditLogger interface {
	LogCreate(ctx context.Context, book entities.Book)
	LogUpdate(ctx context.Context, book entities.Book, fields []string)
	LogDelete(ctx context.Context, book entities.Book)
}

// DeleteResult is the acknowledgement of a deletion.
type DeleteResult struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// Stats summarizes the catalog.
type Stats struct {
	TotalBooks int64 `json:"total_books"`
}

type Service struct {
	store   Store
	audit   AuditLogger
	builder *query.Builder
	now     func() time.Time
}

type Option func(*Service)

// WithAudit records successful mutations through logger.
func WithAudit(logger AuditLogger) Option {
	return func(s *Service) { s.audit = logger }
}

// WithClock overrides the clock used for year validation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		builder: query.NewBuilder(entities.Book{}.TableName()),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) currentYear() int {
	return s.now().Year()
}

// Add validates the draft and stores a new book.
func (s *Service) Add(ctx context.Context, draft validation.BookDraft) (*entities.Book, error) {
	valid, err := validation.ValidateCreate(draft, s.currentYear())
	if err != nil {
		return nil, validationError(err)
	}

	book, err := s.store.Create(ctx, entities.Book{
		Title:  valid.Title,
		Author: valid.Author,
		Year:   valid.Year,
	})
	if err != nil {
		return nil, s.translate(err, 0)
	}

	if s.audit != nil {
		s.audit.LogCreate(ctx, *book)
	}
	return book, nil
}

// List returns one page of all books in ascending id order.
func (s *Service) List(ctx context.Context, input validation.PageInput) ([]entities.Book, error) {
	page, err := validation.ValidatePage(input)
	if err != nil {
		return nil, validationError(err)
	}
	return s.run(ctx, query.Criteria{}, page)
}

// Search returns one page of books matching every supplied criterion.
func (s *Service) Search(ctx context.Context, criteria validation.SearchCriteria, input validation.PageInput) ([]entities.Book, error) {
	search, searchErr := validation.ValidateSearch(criteria)
	page, pageErr := validation.ValidatePage(input)
	if err := validation.Merge(searchErr, pageErr); err != nil {
		return nil, validationError(err)
	}

	return s.run(ctx, query.Criteria{
		Title:  search.Title,
		Author: search.Author,
		Year:   search.Year,
	}, page)
}

func (s *Service) run(ctx context.Context, criteria query.Criteria, page validation.Page) ([]entities.Book, error) {
	stmt, err := s.builder.Build(criteria, query.Bounds{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		return nil, internalError(err)
	}
	result, err := s.store.List(ctx, stmt)
	if err != nil {
		return nil, internalError(err)
	}
	return result, nil
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err, id)
	}
	return book, nil
}

// Update applies the supplied fields of draft to an existing book.
// An unknown id is reported before any validation failure.
func (s *Service) Update(ctx context.Context, id uint, draft validation.BookDraft) (*entities.Book, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	valid, err := validation.ValidateUpdate(draft, s.currentYear())
	if err != nil {
		return nil, validationError(err)
	}

	book, err := s.store.Update(ctx, id, books.Patch{
		Title:   valid.Title,
		Author:  valid.Author,
		SetYear: valid.Year.Set,
		Year:    valid.Year.Value,
	})
	if err != nil {
		return nil, s.translate(err, id)
	}

	if s.audit != nil {
		s.audit.LogUpdate(ctx, *book, valid.Fields())
	}
	return book, nil
}

// Delete permanently removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id uint) (*DeleteResult, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return nil, s.translate(err, id)
	}

	if s.audit != nil {
		s.audit.LogDelete(ctx, *book)
	}
	return &DeleteResult{
		Message: fmt.Sprintf("Book with id %d deleted.", id),
		ID:      id,
	}, nil
}

// Stats returns catalog totals.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return &Stats{TotalBooks: total}, nil
}

func (s *Service) translate(err error, id uint) *Error {
	var conflict *books.ConflictError
	switch {
	case errors.As(err, &conflict):
		return conflictError(conflict.Title, conflict.Author)
	case errors.Is(err, books.ErrNotFound):
		return notFoundError(id)
	default:
		return internalError(err)
	}
}
