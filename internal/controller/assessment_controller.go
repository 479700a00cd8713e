package controller

import (
	"assessment_backend/internal/middleware"
	"assessment_backend/internal/query"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary List assessments for a tenant
// @Tags assessments
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Status filter"
// @Param search query string false "Name prefix search"
// @Param sortBy query string false "createdAt or name"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} util.ListResponse
// @Router /tenants/{tenantId}/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	pg := query.ParsePagination(ctx.Query("page"), ctx.Query("limit"),
		query.AssessmentDefaultLimit, query.AssessmentMaxLimit)
	filter := query.AssessmentFilter{
		TenantID: tenantID,
		Status:   ctx.Query("status"),
		Search:   ctx.Query("search"),
	}
	sort := query.AssessmentSort(ctx.Query("sortBy"), ctx.Query("sortOrder"))

	items, total, err := c.Service.List(ctx.Request.Context(), filter, sort, pg)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Page(ctx, items, pg.Page, pg.Limit, total, query.TotalPages(total, pg.Limit))
}

// @Summary Get one assessment
// @Tags assessments
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param assessmentId path string true "Assessment id"
// @Success 200 {object} model.Assessment
// @Router /tenants/{tenantId}/assessments/{assessmentId} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	a, err := c.Service.Get(ctx.Request.Context(), tenantID, ctx.Param("assessmentId"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.OK(ctx, a)
}
