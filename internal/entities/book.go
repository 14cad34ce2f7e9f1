package entities

import (
	"fmt"
	"time"
)

// Column limits for the books table.
const (
	TitleMaxLength  = 500
	AuthorMaxLength = 250
)

// Book is a catalog record. The (title, author) pair is unique.
type Book struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:500;not null;index;uniqueIndex:uix_title_author,priority:1" json:"title"`
	Author    string    `gorm:"size:250;not null;index;uniqueIndex:uix_title_author,priority:2" json:"author"`
	Year      *int      `gorm:"index" json:"year"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	year := "nil"
	if b.Year != nil {
		year = fmt.Sprintf("%d", *b.Year)
	}
	return fmt.Sprintf("Book(id=%d, title=%q, author=%q, year=%s)", b.ID, b.Title, b.Author, year)
}
