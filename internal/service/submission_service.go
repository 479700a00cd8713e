package service

import (
	"context"
	"strings"
	"time"

	"assessment_backend/internal/model"
	"assessment_backend/internal/query"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
)

type SubmissionStore interface {
	List(ctx context.Context, filter bson.M, projection bson.M, pg query.Pagination) ([]model.Submission, int64, error)
	Insert(ctx context.Context, s *model.Submission) error
}

type SubmissionService struct {
	store SubmissionStore
}

func NewSubmissionService(store SubmissionStore) *SubmissionService {
	return &SubmissionService{store: store}
}

func (s *SubmissionService) List(ctx context.Context, filter query.SubmissionFilter, pg query.Pagination) ([]model.Submission, int64, error) {
	return s.store.List(ctx, filter.Build(), repository.SubmissionListProjection, pg)
}

// ListForAssessment pages the submissions of a single assessment.
func (s *SubmissionService) ListForAssessment(ctx context.Context, tenantID, rawAssessmentID string, pg query.Pagination) ([]model.Submission, int64, error) {
	id, err := parseAssessmentID(rawAssessmentID)
	if err != nil {
		return nil, 0, err
	}

	filter := bson.M{"tenantId": tenantID, "assessmentId": id}
	return s.store.List(ctx, filter, repository.AssessmentSubmissionProjection, pg)
}

// CreateSubmissionRequest is the validated-insert payload.
type CreateSubmissionRequest struct {
	AssessmentID    string     `json:"assessmentId"`
	CandidateID     string     `json:"candidateId"`
	Status          string     `json:"status"`
	Score           *float64   `json:"score"`
	SubmittedAt     *time.Time `json:"submittedAt"`
	DurationSeconds *int       `json:"durationSeconds"`
	Responses       bson.M     `json:"responses"`
}

// Create validates and stores a new submission. Status defaults to
// in_progress and submittedAt to now, as on the write path this service
// fronts.
func (s *SubmissionService) Create(ctx context.Context, tenantID string, req CreateSubmissionRequest) (*model.Submission, error) {
	assessmentID, err := parseAssessmentID(req.AssessmentID)
	if err != nil {
		return nil, util.NewInvalidInput("A valid assessmentId must be provided")
	}

	candidateID := strings.TrimSpace(req.CandidateID)
	if candidateID == "" {
		return nil, util.NewInvalidInput("candidateId is required")
	}

	status := req.Status
	if status == "" {
		status = model.SubmissionStatusInProgress
	}
	if !model.ValidSubmissionStatus(status) {
		return nil, util.NewInvalidInput("Invalid submission status")
	}

	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return nil, util.NewInvalidInput("score must be between 0 and 100")
	}

	now := time.Now().UTC()
	submittedAt := req.SubmittedAt
	if submittedAt == nil {
		submittedAt = &now
	}

	sub := &model.Submission{
		TenantID:        tenantID,
		AssessmentID:    assessmentID,
		CandidateID:     candidateID,
		Status:          status,
		Score:           req.Score,
		SubmittedAt:     submittedAt,
		DurationSeconds: req.DurationSeconds,
		Responses:       req.Responses,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Insert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
