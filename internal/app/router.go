package app

import (
	"assessment_backend/internal/middleware"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Every tenant-scoped route shares the tenant guard; nothing below
		// it can run a query without a resolved tenant id.
		tenants := api.Group("/tenants/:tenantId")
		tenants.Use(middleware.TenantContext())
		{
			tenants.GET("/assessments", c.assessment.ListAssessments)
			tenants.GET("/assessments/:assessmentId", c.assessment.GetAssessment)
			tenants.GET("/assessments/:assessmentId/submissions", c.submission.ListForAssessment)
			tenants.GET("/assessments/:assessmentId/summary", c.report.GetSummary)
			tenants.GET("/assessments/:assessmentId/daily-activity", c.report.GetDailyActivity)

			tenants.GET("/submissions", c.submission.ListSubmissions)
			tenants.POST("/submissions", c.submission.CreateSubmission)
		}
	}

	router.NoRoute(util.NotFoundRoute)
}
