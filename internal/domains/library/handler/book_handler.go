package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
)

const (
	maxImportFileSize = 10 << 20
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type BookHandler struct {
	service service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/books?title=&author_first_name=&author_last_name=&genre=
// ════════════════════════════════════════════════════════════════

// GetAll applies at most one filter: title, then author, then genre
func (h *BookHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	title := strings.TrimSpace(c.Query("title"))
	first := strings.TrimSpace(c.Query("author_first_name"))
	last := strings.TrimSpace(c.Query("author_last_name"))
	genre := strings.TrimSpace(c.Query("genre"))

	var (
		books []model.Book
		err   error
	)
	switch {
	case title != "":
		books, err = h.service.FindByTitle(ctx, title)
	case first != "" || last != "":
		if first == "" || last == "" {
			response.BadRequest(c, "Both author_first_name and author_last_name are required")
			return
		}
		books, err = h.service.FindByAuthor(ctx, first, last)
	case genre != "":
		books, err = h.service.FindByGenre(ctx, genre)
	default:
		books, err = h.service.GetAll(ctx)
	}
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, books)
}

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, book)
}

// ════════════════════════════════════════════════════════════════
// WRITE: POST /v1/books, PUT /v1/books/:id, DELETE /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, book)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// ════════════════════════════════════════════════════════════════
// COMMENTS: /v1/books/:id/comments
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetComments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *BookHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, comment)
}

// RemoveComment - DELETE /v1/books/:id/comments/:commentId
func (h *BookHandler) RemoveComment(c *gin.Context) {
	bookID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := h.service.RemoveComment(c.Request.Context(), bookID, commentID); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"id": commentID})
}

// ════════════════════════════════════════════════════════════════
// TRANSFER: POST /v1/books/import, GET /v1/books/export
// ════════════════════════════════════════════════════════════════

// Import expects an xlsx workbook in the multipart field "file"
func (h *BookHandler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required (multipart/form-data)")
		return
	}
	if header.Size > maxImportFileSize {
		response.BadRequest(c, fmt.Sprintf("file exceeds %d bytes", maxImportFileSize))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "cannot open uploaded file")
		return
	}
	defer file.Close()

	log.Info().
		Str("subject", c.GetString("subject")).
		Str("file_name", header.Filename).
		Int64("file_size", header.Size).
		Msg("Book import requested")

	result, err := h.service.Import(c.Request.Context(), file)
	if errors.Is(err, model.ErrImportValidation) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, model.ToErrorCode(err), err.Error(), result)
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, result)
}

// Export streams every book as an xlsx attachment
func (h *BookHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := h.service.Export(c.Request.Context(), &buf); err != nil {
		handleError(c, err)
		return
	}

	name := fmt.Sprintf("books_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
