package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/catalog"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/validation"
)

// BookCatalog is the set of catalog operations the controller exposes.
type BookCatalog interface {
	Add(ctx context.Context, draft validation.BookDraft) (*entities.Book, error)
	List(ctx context.Context, page validation.PageInput) ([]entities.Book, error)
	Search(ctx context.Context, criteria validation.SearchCriteria, page validation.PageInput) ([]entities.Book, error)
	Get(ctx context.Context, id uint) (*entities.Book, error)
	Update(ctx context.Context, id uint, draft validation.BookDraft) (*entities.Book, error)
	Delete(ctx context.Context, id uint) (*catalog.DeleteResult, error)
	Stats(ctx context.Context) (*catalog.Stats, error)
}

type BooksController struct {
	catalog BookCatalog
}

func NewBooksController(catalog BookCatalog) *BooksController {
	return &BooksController{
		catalog: catalog,
	}
}

// bindDraft decodes the JSON body. Absent and null fields stay distinguishable.
func bindDraft(c *gin.Context) (validation.BookDraft, bool) {
	var draft validation.BookDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, CodeInvalidBody, "invalid request body: "+err.Error())
		return draft, false
	}
	return draft, true
}

func bindPage(c *gin.Context) (validation.PageInput, bool) {
	skip, ok := parseQueryInt(c, "skip")
	if !ok {
		return validation.PageInput{}, false
	}
	limit, ok := parseQueryInt(c, "limit")
	if !ok {
		return validation.PageInput{}, false
	}
	return validation.PageInput{Skip: skip, Limit: limit}, true
}

// CreateBook handles POST /books/ and POST /api/books.
func (controller *BooksController) CreateBook(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	book, err := controller.catalog.Add(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err, "create book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

// ListBooks handles GET /books/ and GET /api/books.
func (controller *BooksController) ListBooks(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	books, err := controller.catalog.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// SearchBooks handles GET /books/search/ and GET /api/books/search.
func (controller *BooksController) SearchBooks(c *gin.Context) {
	year, ok := parseQueryInt(c, "year")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	criteria := validation.SearchCriteria{
		Title:  parseQueryString(c, "title"),
		Author: parseQueryString(c, "author"),
		Year:   year,
	}

	books, err := controller.catalog.Search(c.Request.Context(), criteria, page)
	if err != nil {
		respondError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook handles GET /api/books/:id.
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.catalog.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook handles PUT and PATCH on a single book. Only the supplied
// fields change.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	book, err := controller.catalog.Update(c.Request.Context(), id, draft)
	if err != nil {
		respondError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE on a single book.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := controller.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "delete book")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (controller *BooksController) GetBookStats(c *gin.Context) {
	stats, err := controller.catalog.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "book stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
