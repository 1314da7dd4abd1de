package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to its HTTP status and error body.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	var (
		vErr  *apperrors.ValidationError
		nfErr *apperrors.NotFoundError
		sErr  *apperrors.ServiceError
	)
	switch {
	case errors.As(err, &vErr):
		logger.Warn("Validation error", slog.String("error", vErr.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorDetail{
			Code:    dto.CodeValidation,
			Message: vErr.Error(),
			Details: vErr.Fields,
		}})
	case errors.As(err, &nfErr):
		logger.Warn("Resource not found", slog.String("error", nfErr.Error()))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.CodeNotFound, nfErr.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.CodeNotFound, "Resource not found"))
	case errors.As(err, &sErr):
		logger.Error("Service error", slog.String("error", sErr.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.CodeServiceError, sErr.Message))
	default:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.CodeInternalError, "An unexpected error occurred"))
	}
}

func respondBadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(code, message))
}

func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.CodeNotFound, "Resource not found"))
}

func methodNotAllowedHandler(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.CodeMethodNotAllowed, "Method not allowed for this endpoint"))
}
