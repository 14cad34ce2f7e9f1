// Package books is the durable record store for catalog books.
//
// Every mutation runs in its own transaction: the write and the uniqueness
// check (the uix_title_author index) commit or roll back together, and the
// connection is released on every exit path.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Create(ctx, entities.Book{Title: "Dune", Author: "Herbert"})
//	if errors.Is(err, books.ErrConflict) { ... }
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/query"
)

// Patch lists the fields an update changes. Nil Title or Author are left
// untouched. SetYear with a nil Year clears the stored year.
type Patch struct {
	Title   *string
	Author  *string
	SetYear bool
	Year    *int
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Author == nil && !p.SetYear
}

func (p Patch) apply(book *entities.Book) {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Author != nil {
		book.Author = *p.Author
	}
	if p.SetYear {
		book.Year = p.Year
	}
}

func (p Patch) columns() map[string]any {
	cols := make(map[string]any)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.SetYear {
		cols["year"] = p.Year
	}
	return cols
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the book and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, book entities.Book) (*entities.Book, error) {
	book.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&book).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &ConflictError{Title: book.Title, Author: book.Author}
		}
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &book, nil
}

// Get retrieves a book by its ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

// List runs a statement built by query.Builder. The result is fully
// materialized and never nil.
func (r *Repository) List(ctx context.Context, stmt query.Statement) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(&books).Error
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Update applies the patch to the book with the given id and returns the
// stored result. The post-patch (title, author) pair must not belong to
// another book.
func (r *Repository) Update(ctx context.Context, id uint, patch Patch) (*entities.Book, error) {
	var updated entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Book
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}

		updated = current
		patch.apply(&updated)

		if !patch.Empty() {
			if err := tx.Model(&entities.Book{}).Where("id = ?", id).Updates(patch.columns()).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case isUniqueViolation(err):
			return nil, &ConflictError{Title: updated.Title, Author: updated.Author}
		}
		return nil, fmt.Errorf("update book %d: %w", id, err)
	}
	return &updated, nil
}

// Delete permanently removes the book with the given id.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&total).Error
	return total, err
}
