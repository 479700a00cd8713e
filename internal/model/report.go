package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusCount is one per-status bucket inside an AssessmentSummary.
type StatusCount struct {
	Status string `bson:"status" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// AssessmentSummary is recomputed from current submission state on every
// request; it is never persisted. Score fields are nil when no submission
// carries a score.
type AssessmentSummary struct {
	AssessmentID     primitive.ObjectID `bson:"assessmentId" json:"assessmentId"`
	TotalSubmissions int64              `bson:"totalSubmissions" json:"totalSubmissions"`
	AvgScore         *float64           `bson:"avgScore" json:"avgScore"`
	MinScore         *float64           `bson:"minScore" json:"minScore"`
	MaxScore         *float64           `bson:"maxScore" json:"maxScore"`
	StatusCounts     []StatusCount      `bson:"statusCounts" json:"statusCounts"`
}

// EmptyAssessmentSummary is the shape returned when an assessment has no
// submissions at all: zero total, nil scores, empty status list.
func EmptyAssessmentSummary(assessmentID primitive.ObjectID) *AssessmentSummary {
	return &AssessmentSummary{
		AssessmentID: assessmentID,
		StatusCounts: []StatusCount{},
	}
}

// DailyActivityBucket counts submissions for one calendar day. Days with no
// submissions are not synthesized; a gap in the sequence means zero.
type DailyActivityBucket struct {
	Date  time.Time `bson:"date" json:"date"`
	Count int64     `bson:"count" json:"count"`
}
