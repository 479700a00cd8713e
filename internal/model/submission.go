package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusCompleted  = "completed"
	SubmissionStatusExpired    = "expired"
	SubmissionStatusCancelled  = "cancelled"
)

func ValidSubmissionStatus(status string) bool {
	switch status {
	case SubmissionStatusInProgress, SubmissionStatusCompleted,
		SubmissionStatusExpired, SubmissionStatusCancelled:
		return true
	}
	return false
}

// Submission is one candidate's run of an assessment. The write path
// guarantees tenantId matches the referenced assessment's tenant; the query
// layer still scopes every predicate by tenantId so cross-tenant data
// cannot leak even if that guarantee were violated.
//
// Responses can be arbitrarily large and is never projected by list or
// reporting queries.
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID        string             `bson:"tenantId" json:"tenantId"`
	AssessmentID    primitive.ObjectID `bson:"assessmentId,omitempty" json:"assessmentId,omitzero"`
	CandidateID     string             `bson:"candidateId" json:"candidateId"`
	Status          string             `bson:"status" json:"status"`
	Score           *float64           `bson:"score" json:"score"`
	SubmittedAt     *time.Time         `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	DurationSeconds *int               `bson:"durationSeconds,omitempty" json:"durationSeconds,omitempty"`
	Responses       bson.M             `bson:"responses,omitempty" json:"responses,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

func (Submission) CollectionName() string {
	return "submissions"
}
