package main

import (
	"go-hris-web/internal/app"
	"go-hris-web/internal/bootstrap"
	"go-hris-web/internal/config"
	"go-hris-web/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewStdoutAuditLogger()
	if err := bootstrap.StartHTTPServer(r, cfg, auditLogger); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
