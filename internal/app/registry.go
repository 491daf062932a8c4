package app

import (
	"net/http"

	"go-hris-web/internal/apiclient"
	"go-hris-web/internal/attendance"
	"go-hris-web/internal/employee"
	"go-hris-web/internal/events"
	"go-hris-web/internal/middleware"
	"go-hris-web/internal/page"
	"go-hris-web/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	client *apiclient.Client,
	tracker page.Tracker,
	publisher events.Publisher,
	logger *zap.Logger,
) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(client)
	attendanceRepo := attendance.NewRepository(client)

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo, logger)

	// --- Controllers ---
	employeeCtrl := employee.NewController(employeeRepo, tracker, publisher, logger)
	attendanceCtrl := attendance.NewController(employeeRepo, attendanceService, tracker, publisher, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeCtrl, logger)
	attendanceHandler := attendance.NewHandler(attendanceCtrl, logger)

	// --- Routes ---
	router.Use(middleware.RequestID(), middleware.Session())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/employees")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employee.RegisterRoutes(&router.RouterGroup, employeeHandler, logger)
	attendance.RegisterRoutes(&router.RouterGroup, attendanceHandler, logger)

	return nil
}
