package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

var serviceEndpoints = map[string]string{
	"health":     "/api/health",
	"expenses":   "/api/expenses",
	"categories": "/api/categories",
	"summary":    "/api/expenses/summary",
}

// getHome godoc
// @Summary Service information
// @Description Name, version and the main endpoints of the service
// @Tags root
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Service:   dto.ServiceName,
		Version:   dto.ServiceVersion,
		Endpoints: serviceEndpoints,
	})
}

// healthHandler godoc
// @Summary Health check
// @Description Reports service status and database connectivity
// @Tags root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.HealthResponse
// @Router /api/health [get]
func healthHandler(health portssvc.HealthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponse{
			Status:   "healthy",
			Service:  dto.ServiceName,
			Version:  dto.ServiceVersion,
			Database: "connected",
		}
		if err := health.CheckDatabase(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			resp.Status = "unhealthy"
			resp.Database = "disconnected"
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
