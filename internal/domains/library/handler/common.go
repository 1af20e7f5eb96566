package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/response"
)

// parseID reads a positive int64 path parameter, answering 400 itself on failure
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, fmt.Sprintf("Invalid %s", param))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// handleError maps domain errors onto the response envelope
func handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	code := model.ToErrorCode(err)

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, status, code, "Validation failed", verrs)
		return
	}

	if status >= 500 {
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		response.ErrorResponse(c, status, code, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, code, err.Error())
}
