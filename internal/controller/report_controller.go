package controller

import (
	"assessment_backend/internal/middleware"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// @Summary Aggregated summary statistics for an assessment
// @Tags reports
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param assessmentId path string true "Assessment id"
// @Success 200 {object} model.AssessmentSummary
// @Router /tenants/{tenantId}/assessments/{assessmentId}/summary [get]
func (c *ReportController) GetSummary(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	summary, err := c.Service.Summary(ctx.Request.Context(), tenantID, ctx.Param("assessmentId"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.OK(ctx, summary)
}

// @Summary Per-day submission counts for an assessment
// @Tags reports
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param assessmentId path string true "Assessment id"
// @Param from query string false "Lower date bound (ISO date)"
// @Param to query string false "Upper date bound (ISO date)"
// @Success 200 {array} model.DailyActivityBucket
// @Router /tenants/{tenantId}/assessments/{assessmentId}/daily-activity [get]
func (c *ReportController) GetDailyActivity(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	buckets, err := c.Service.DailyActivity(
		ctx.Request.Context(),
		tenantID,
		ctx.Param("assessmentId"),
		ctx.Query("from"),
		ctx.Query("to"),
	)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.OK(ctx, buckets)
}
