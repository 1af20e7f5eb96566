package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
)

type GenreHandler struct {
	service service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{service: svc}
}

// GetAll - GET /v1/genres
func (h *GenreHandler) GetAll(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, genres)
}

// GetByID - GET /v1/genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, g)
}

// Create - POST /v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req model.GenreRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, g)
}

// Update - PUT /v1/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.GenreRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, g)
}

// Delete - DELETE /v1/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
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
