package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// GetAll - GET /v1/comments?nickname=
func (h *CommentHandler) GetAll(c *gin.Context) {
	var (
		comments []model.Comment
		err      error
	)
	if nickname := strings.TrimSpace(c.Query("nickname")); nickname != "" {
		comments, err = h.service.FindByNickname(c.Request.Context(), nickname)
	} else {
		comments, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, comments)
}

// GetByID - GET /v1/comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, comment)
}

// Update - PUT /v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req model.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, comment)
}

// Delete - DELETE /v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
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
