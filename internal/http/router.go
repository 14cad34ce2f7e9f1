package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	// Resource paths
	router.POST("/books/", booksController.CreateBook)
	router.GET("/books/", booksController.ListBooks)
	router.GET("/books/search/", booksController.SearchBooks)
	router.PUT("/books/:id", booksController.UpdateBook)
	router.DELETE("/books/:id", booksController.DeleteBook)

	// Books API endpoints
	api := router.Group("/api")
	api.POST("/books", booksController.CreateBook)
	api.GET("/books", booksController.ListBooks)
	api.GET("/books/search", booksController.SearchBooks)
	api.GET("/books/stats", booksController.GetBookStats)
	api.GET("/books/:id", booksController.GetBook)
	api.PUT("/books/:id", booksController.UpdateBook)
	api.PATCH("/books/:id", booksController.UpdateBook)
	api.DELETE("/books/:id", booksController.DeleteBook)

	// Audit endpoints
	if cfg.AuditReader != nil {
		auditController := NewAuditController(cfg.AuditReader)
		api.GET("/audit", auditController.GetAuditEvents)
		api.GET("/books/:id/history", auditController.GetBookHistory)
	}

	return router
}
