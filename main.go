// @title Assessment Platform API
// @version 1.0
// @description Multi-tenant read/query and reporting API over assessments and candidate submissions.

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"assessment_backend/internal/app"
	"assessment_backend/internal/config"
	"assessment_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
