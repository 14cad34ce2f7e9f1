package books

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates no book exists with the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrConflict indicates a write would duplicate an existing (title, author) pair.
	ErrConflict = errors.New("book already exists")
)

// ConflictError names the (title, author) pair that collided.
type ConflictError struct {
	Title  string
	Author string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("book with title %q and author %q already exists", e.Title, e.Author)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// isUniqueViolation recognises unique-index failures. gorm translates them to
// ErrDuplicatedKey when TranslateError is on; the sqlite3 check covers
// connections opened without it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
