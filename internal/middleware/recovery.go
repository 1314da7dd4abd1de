package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a 500 INTERNAL_ERROR body and logs the cause.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Recovered from panic",
			slog.String("panic", fmt.Sprint(recovered)))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.CodeInternalError, "An unexpected error occurred"))
	})
}
