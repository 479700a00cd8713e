package repository

import (
	"context"
	"time"

	"assessment_backend/internal/model"
	"assessment_backend/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Summary reduces an unbounded submission set to one compact statistics
// document, entirely server-side. An assessment with no submissions yields
// the zero-valued summary shape, never an error.
func (r *SubmissionRepository) Summary(ctx context.Context, tenantID string, assessmentID primitive.ObjectID) (*model.AssessmentSummary, error) {
	cur, err := r.coll.Aggregate(ctx, summaryPipeline(tenantID, assessmentID),
		options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return nil, err
	}

	var out []model.AssessmentSummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return model.EmptyAssessmentSummary(assessmentID), nil
	}
	return &out[0], nil
}

// summaryPipeline stages:
//  1. index-friendly match on (tenantId, assessmentId)
//  2. group by (assessmentId, status); statuses with absent scores must not
//     be mixed into a single pass, or the null scores would skew avg/min/max
//  3. regroup by assessmentId, merging O(distinct statuses) partials
//  4. project, rounding the average to 2 decimals
//
// The final avgScore is the mean of the per-status averages, not a weighted
// mean over raw scores; with unequal status groups the two differ. This
// reproduces the shipped reporting contract on purpose.
func summaryPipeline(tenantID string, assessmentID primitive.ObjectID) []bson.D {
	return []bson.D{
		{{Key: "$match", Value: bson.D{
			{Key: "tenantId", Value: tenantID},
			{Key: "assessmentId", Value: assessmentID},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "assessmentId", Value: "$assessmentId"},
				{Key: "status", Value: "$status"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgScore", Value: bson.D{{Key: "$avg", Value: "$score"}}},
			{Key: "minScore", Value: bson.D{{Key: "$min", Value: "$score"}}},
			{Key: "maxScore", Value: bson.D{{Key: "$max", Value: "$score"}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id.assessmentId"},
			{Key: "totalSubmissions", Value: bson.D{{Key: "$sum", Value: "$count"}}},
			{Key: "avgScore", Value: bson.D{{Key: "$avg", Value: "$avgScore"}}},
			{Key: "minScore", Value: bson.D{{Key: "$min", Value: "$minScore"}}},
			{Key: "maxScore", Value: bson.D{{Key: "$max", Value: "$maxScore"}}},
			{Key: "statusCounts", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "status", Value: "$_id.status"},
				{Key: "count", Value: "$count"},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "assessmentId", Value: "$_id"},
			{Key: "totalSubmissions", Value: 1},
			{Key: "avgScore", Value: bson.D{{Key: "$round", Value: bson.A{"$avgScore", 2}}}},
			{Key: "minScore", Value: 1},
			{Key: "maxScore", Value: 1},
			{Key: "statusCounts", Value: 1},
		}}},
	}
}

// DailyActivity buckets submissions by calendar day inside an optional
// submitted-date range, ascending. Days without submissions produce no
// bucket; consumers treat gaps as zero.
func (r *SubmissionRepository) DailyActivity(ctx context.Context, tenantID string, assessmentID primitive.ObjectID, from, to *time.Time) ([]model.DailyActivityBucket, error) {
	cur, err := r.coll.Aggregate(ctx, dailyActivityPipeline(tenantID, assessmentID, from, to),
		options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return nil, err
	}

	buckets := []model.DailyActivityBucket{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func dailyActivityPipeline(tenantID string, assessmentID primitive.ObjectID, from, to *time.Time) []bson.D {
	match := bson.D{
		{Key: "tenantId", Value: tenantID},
		{Key: "assessmentId", Value: assessmentID},
	}
	if rng := query.DateRange(from, to); rng != nil {
		match = append(match, bson.E{Key: "submittedAt", Value: rng})
	}

	return []bson.D{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$submittedAt"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$submittedAt"}}},
				{Key: "day", Value: bson.D{{Key: "$dayOfMonth", Value: "$submittedAt"}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
			{Key: "_id.day", Value: 1},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "date", Value: bson.D{{Key: "$dateFromParts", Value: bson.D{
				{Key: "year", Value: "$_id.year"},
				{Key: "month", Value: "$_id.month"},
				{Key: "day", Value: "$_id.day"},
			}}}},
			{Key: "count", Value: 1},
		}}},
	}
}
