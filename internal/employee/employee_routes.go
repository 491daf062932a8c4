package employee

import (
	"go-hris-web/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the employees page. Create and delete share one
// per-IP bucket so alternating between them does not double the allowance.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	writeLimit := middleware.RateLimitByIP(1, 5)

	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.Page)
		employees.POST("", writeLimit, handler.Create)
		employees.POST("/:employeeId/delete", writeLimit, handler.Delete)
	}
}
