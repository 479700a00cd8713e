package service

import (
	"context"
	"testing"
	"time"

	"assessment_backend/internal/model"
	"assessment_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReportStore struct {
	summaryCalls  int
	activityCalls int

	summary *model.AssessmentSummary
	buckets []model.DailyActivityBucket

	gotTenantID string
	gotID       primitive.ObjectID
	gotFrom     *time.Time
	gotTo       *time.Time
}

func (f *fakeReportStore) Summary(_ context.Context, tenantID string, id primitive.ObjectID) (*model.AssessmentSummary, error) {
	f.summaryCalls++
	f.gotTenantID = tenantID
	f.gotID = id
	if f.summary == nil {
		return model.EmptyAssessmentSummary(id), nil
	}
	return f.summary, nil
}

func (f *fakeReportStore) DailyActivity(_ context.Context, tenantID string, id primitive.ObjectID, from, to *time.Time) ([]model.DailyActivityBucket, error) {
	f.activityCalls++
	f.gotTenantID = tenantID
	f.gotID = id
	f.gotFrom = from
	f.gotTo = to
	return f.buckets, nil
}

func TestReportServiceSummaryRejectsMalformedIDBeforeStore(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	_, err := svc.Summary(context.Background(), "acme", "not-hex")

	apiErr, ok := err.(*util.APIError)
	require.True(t, ok)
	assert.Equal(t, util.CodeInvalidInput, apiErr.Code)
	assert.Equal(t, 0, store.summaryCalls, "no pipeline may execute for invalid input")
}

func TestReportServiceSummaryEmptyAssessment(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	id := primitive.NewObjectID()
	summary, err := svc.Summary(context.Background(), "acme", id.Hex())
	require.NoError(t, err)

	assert.Equal(t, id, summary.AssessmentID)
	assert.Equal(t, int64(0), summary.TotalSubmissions)
	assert.Nil(t, summary.AvgScore)
	assert.Nil(t, summary.MinScore)
	assert.Nil(t, summary.MaxScore)
	assert.NotNil(t, summary.StatusCounts)
	assert.Empty(t, summary.StatusCounts)
}

func TestReportServiceDailyActivityParsesBoundsLeniently(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	id := primitive.NewObjectID()
	_, err := svc.DailyActivity(context.Background(), "acme", id.Hex(), "garbage", "2024-01-03")
	require.NoError(t, err)

	assert.Equal(t, 1, store.activityCalls)
	assert.Nil(t, store.gotFrom, "unparseable bound is dropped, not an error")
	require.NotNil(t, store.gotTo)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), *store.gotTo)
}

func TestReportServiceDailyActivityRejectsMalformedID(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	_, err := svc.DailyActivity(context.Background(), "acme", "nope", "", "")

	apiErr, ok := err.(*util.APIError)
	require.True(t, ok)
	assert.Equal(t, util.CodeInvalidInput, apiErr.Code)
	assert.Equal(t, 0, store.activityCalls)
}

func TestReportServiceTenantFlowsThrough(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	id := primitive.NewObjectID()
	_, err := svc.Summary(context.Background(), "globex", id.Hex())
	require.NoError(t, err)

	assert.Equal(t, "globex", store.gotTenantID)
	assert.Equal(t, id, store.gotID)
}
