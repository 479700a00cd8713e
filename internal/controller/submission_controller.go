package controller

import (
	"assessment_backend/internal/middleware"
	"assessment_backend/internal/query"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: svc}
}

// @Summary List submissions for a tenant
// @Tags submissions
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Param assessmentId query string false "Assessment id filter"
// @Param candidateId query string false "Candidate id filter"
// @Param status query string false "Status filter"
// @Param from query string false "Submitted-at lower bound (ISO date)"
// @Param to query string false "Submitted-at upper bound (ISO date)"
// @Success 200 {object} util.ListResponse
// @Router /tenants/{tenantId}/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	pg := query.ParsePagination(ctx.Query("page"), ctx.Query("limit"),
		query.SubmissionDefaultLimit, query.SubmissionMaxLimit)

	filter, err := query.ParseSubmissionFilter(
		tenantID,
		ctx.Query("assessmentId"),
		ctx.Query("candidateId"),
		ctx.Query("status"),
		ctx.Query("from"),
		ctx.Query("to"),
	)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	items, total, err := c.Service.List(ctx.Request.Context(), filter, pg)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Page(ctx, items, pg.Page, pg.Limit, total, query.TotalPages(total, pg.Limit))
}

// @Summary List submissions of one assessment
// @Tags submissions
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param assessmentId path string true "Assessment id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} util.ListResponse
// @Router /tenants/{tenantId}/assessments/{assessmentId}/submissions [get]
func (c *SubmissionController) ListForAssessment(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	pg := query.ParsePagination(ctx.Query("page"), ctx.Query("limit"),
		query.SubmissionDefaultLimit, query.SubmissionMaxLimit)

	items, total, err := c.Service.ListForAssessment(ctx.Request.Context(), tenantID, ctx.Param("assessmentId"), pg)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Page(ctx, items, pg.Page, pg.Limit, total, query.TotalPages(total, pg.Limit))
}

// @Summary Create a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant id"
// @Param body body service.CreateSubmissionRequest true "Submission"
// @Success 201 {object} model.Submission
// @Router /tenants/{tenantId}/submissions [post]
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	tenantID := middleware.TenantFromContext(ctx)

	var req service.CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.NewInvalidInput(err.Error()))
		return
	}

	sub, err := c.Service.Create(ctx.Request.Context(), tenantID, req)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Created(ctx, sub)
}
