package service

import (
	"context"
	"errors"
	"strings"

	"assessment_backend/internal/model"
	"assessment_backend/internal/query"
	"assessment_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssessmentStore is the slice of the repository the assessment service
// needs; tests substitute a fake.
type AssessmentStore interface {
	List(ctx context.Context, filter bson.M, sort bson.D, pg query.Pagination) ([]model.Assessment, int64, error)
	FindByID(ctx context.Context, tenantID string, id primitive.ObjectID) (*model.Assessment, error)
}

type AssessmentService struct {
	store AssessmentStore
}

func NewAssessmentService(store AssessmentStore) *AssessmentService {
	return &AssessmentService{store: store}
}

func (s *AssessmentService) List(ctx context.Context, filter query.AssessmentFilter, sort bson.D, pg query.Pagination) ([]model.Assessment, int64, error) {
	return s.store.List(ctx, filter.Build(), sort, pg)
}

// Get fetches one tenant-scoped assessment. A malformed id fails before any
// store call; a well-formed id that matches nothing maps to not_found.
func (s *AssessmentService) Get(ctx context.Context, tenantID, rawID string) (*model.Assessment, error) {
	id, err := parseAssessmentID(rawID)
	if err != nil {
		return nil, err
	}

	a, err := s.store.FindByID(ctx, tenantID, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NewNotFound("Assessment not found for this tenant")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func parseAssessmentID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, util.NewInvalidInput("Invalid assessmentId")
	}
	return id, nil
}
