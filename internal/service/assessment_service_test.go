package service

import (
	"context"
	"testing"

	"assessment_backend/internal/model"
	"assessment_backend/internal/query"
	"assessment_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAssessmentStore struct {
	listCalls int
	findCalls int

	items   []model.Assessment
	total   int64
	found   *model.Assessment
	findErr error

	gotFilter   bson.M
	gotSort     bson.D
	gotTenantID string
	gotID       primitive.ObjectID
}

func (f *fakeAssessmentStore) List(_ context.Context, filter bson.M, sort bson.D, _ query.Pagination) ([]model.Assessment, int64, error) {
	f.listCalls++
	f.gotFilter = filter
	f.gotSort = sort
	return f.items, f.total, nil
}

func (f *fakeAssessmentStore) FindByID(_ context.Context, tenantID string, id primitive.ObjectID) (*model.Assessment, error) {
	f.findCalls++
	f.gotTenantID = tenantID
	f.gotID = id
	return f.found, f.findErr
}

func TestAssessmentServiceListIsTenantScoped(t *testing.T) {
	store := &fakeAssessmentStore{}
	svc := NewAssessmentService(store)

	filter := query.AssessmentFilter{TenantID: "acme", Status: "active"}
	_, _, err := svc.List(context.Background(), filter, query.AssessmentSort("", ""), query.Pagination{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, 1, store.listCalls)
	assert.Equal(t, "acme", store.gotFilter["tenantId"])
	assert.Equal(t, "active", store.gotFilter["status"])
}

func TestAssessmentServiceGetRejectsMalformedIDBeforeStore(t *testing.T) {
	store := &fakeAssessmentStore{}
	svc := NewAssessmentService(store)

	_, err := svc.Get(context.Background(), "acme", "definitely-not-hex")

	apiErr, ok := err.(*util.APIError)
	require.True(t, ok)
	assert.Equal(t, util.CodeInvalidInput, apiErr.Code)
	assert.Equal(t, 0, store.findCalls, "no store call may be issued for invalid input")
}

func TestAssessmentServiceGetMapsNoDocumentsToNotFound(t *testing.T) {
	store := &fakeAssessmentStore{findErr: mongo.ErrNoDocuments}
	svc := NewAssessmentService(store)

	_, err := svc.Get(context.Background(), "acme", primitive.NewObjectID().Hex())

	apiErr, ok := err.(*util.APIError)
	require.True(t, ok)
	assert.Equal(t, util.CodeNotFound, apiErr.Code)
	assert.Equal(t, 404, apiErr.Status)
}

func TestAssessmentServiceGet(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeAssessmentStore{found: &model.Assessment{ID: id, TenantID: "acme", Name: "Go Basics"}}
	svc := NewAssessmentService(store)

	a, err := svc.Get(context.Background(), "acme", id.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", a.Name)
	assert.Equal(t, "acme", store.gotTenantID)
	assert.Equal(t, id, store.gotID)
}
