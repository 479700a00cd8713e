package service

import (
	"context"
	"time"

	"assessment_backend/internal/model"
	"assessment_backend/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportStore interface {
	Summary(ctx context.Context, tenantID string, assessmentID primitive.ObjectID) (*model.AssessmentSummary, error)
	DailyActivity(ctx context.Context, tenantID string, assessmentID primitive.ObjectID, from, to *time.Time) ([]model.DailyActivityBucket, error)
}

type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Summary returns the compact per-assessment statistics document. A
// malformed id fails fast with invalid_input; no pipeline executes.
func (s *ReportService) Summary(ctx context.Context, tenantID, rawAssessmentID string) (*model.AssessmentSummary, error) {
	id, err := parseAssessmentID(rawAssessmentID)
	if err != nil {
		return nil, err
	}
	return s.store.Summary(ctx, tenantID, id)
}

// DailyActivity returns ascending per-day counts. Date bounds follow the
// lenient parse-or-drop rule shared with the submission list filter.
func (s *ReportService) DailyActivity(ctx context.Context, tenantID, rawAssessmentID, fromRaw, toRaw string) ([]model.DailyActivityBucket, error) {
	id, err := parseAssessmentID(rawAssessmentID)
	if err != nil {
		return nil, err
	}

	from := query.ParseDate(fromRaw)
	to := query.ParseDate(toRaw)

	return s.store.DailyActivity(ctx, tenantID, id, from, to)
}
