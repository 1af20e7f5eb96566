package handler

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// Handlers groups the library HTTP handlers for route registration
type Handlers struct {
	Author  *AuthorHandler
	Genre   *GenreHandler
	Book    *BookHandler
	Comment *CommentHandler
}

// RegisterRoutes mounts the library API on rg.
// Reads are public; every write runs through the given guards.
func RegisterRoutes(rg *gin.RouterGroup, h Handlers, guards ...gin.HandlerFunc) {
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(guards), handler)
	}

	authors := rg.Group("/authors")
	{
		authors.GET("", h.Author.GetAll)
		authors.GET("/:id", h.Author.GetByID)
		authors.POST("", guarded(h.Author.Create)...)
		authors.PUT("/:id", guarded(h.Author.Update)...)
		authors.DELETE("/:id", guarded(h.Author.Delete)...)
	}

	genres := rg.Group("/genres")
	{
		genres.GET("", h.Genre.GetAll)
		genres.GET("/:id", h.Genre.GetByID)
		genres.POST("", guarded(h.Genre.Create)...)
		genres.PUT("/:id", guarded(h.Genre.Update)...)
		genres.DELETE("/:id", guarded(h.Genre.Delete)...)
	}

	books := rg.Group("/books")
	{
		books.GET("", h.Book.GetAll)
		books.GET("/export", h.Book.Export)
		books.GET("/:id", h.Book.GetByID)
		books.GET("/:id/comments", h.Book.GetComments)
		books.POST("", guarded(h.Book.Create)...)
		books.POST("/import", guarded(h.Book.Import)...)
		books.PUT("/:id", guarded(h.Book.Update)...)
		books.DELETE("/:id", guarded(h.Book.Delete)...)
		books.POST("/:id/comments", guarded(h.Book.AddComment)...)
		books.DELETE("/:id/comments/:commentId", guarded(h.Book.RemoveComment)...)
	}

	comments := rg.Group("/comments")
	{
		comments.GET("", h.Comment.GetAll)
		comments.GET("/:id", h.Comment.GetByID)
		comments.PUT("/:id", guarded(h.Comment.Update)...)
		comments.DELETE("/:id", guarded(h.Comment.Delete)...)
	}
}
