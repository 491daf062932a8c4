package attendance

import (
	"go-hris-web/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	pages := r.Group("/attendance")
	pages.Use(middleware.ContextLogger(logger))
	{
		pages.GET("", h.Page)
		pages.POST("",
			middleware.RateLimitByIP(1, 5),
			h.Mark,
		)
		pages.GET("/export.xlsx",
			middleware.RateLimitBySession(0.2, 2),
			h.Export,
		)
	}

	api := r.Group("/api/v1/attendance")
	api.Use(middleware.ContextLogger(logger))
	{
		api.GET("/summary", h.Summary)
	}
}
