package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
)

type AuthorHandler struct {
	service service.AuthorService
}

func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, authors)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.AuthorRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, a)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
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
