package query

import (
	"testing"
	"time"

	"assessment_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssessmentFilterAlwaysTenantScoped(t *testing.T) {
	f := AssessmentFilter{TenantID: "acme"}.Build()
	assert.Equal(t, bson.M{"tenantId": "acme"}, f)
}

func TestAssessmentFilterStatus(t *testing.T) {
	f := AssessmentFilter{TenantID: "acme", Status: "active"}.Build()
	assert.Equal(t, "active", f["status"])
	assert.Equal(t, "acme", f["tenantId"])
}

func TestAssessmentFilterSearchEscapesMetacharacters(t *testing.T) {
	f := AssessmentFilter{TenantID: "acme", Search: "a.b*c"}.Build()

	rx, ok := f["name"].(primitive.Regex)
	require.True(t, ok, "search must compile to a regex predicate")
	assert.Equal(t, `^a\.b\*c`, rx.Pattern, "metacharacters must be escaped and the match anchored")
	assert.Equal(t, "i", rx.Options)
}

func TestAssessmentFilterSearchTrimsAndIgnoresBlank(t *testing.T) {
	f := AssessmentFilter{TenantID: "acme", Search: "  Go  "}.Build()
	rx := f["name"].(primitive.Regex)
	assert.Equal(t, "^Go", rx.Pattern)

	f = AssessmentFilter{TenantID: "acme", Search: "   "}.Build()
	_, present := f["name"]
	assert.False(t, present, "blank search must not add a predicate")
}

func TestParseSubmissionFilterInvalidAssessmentID(t *testing.T) {
	_, err := ParseSubmissionFilter("acme", "not-an-object-id", "", "", "", "")
	require.Error(t, err)

	apiErr, ok := err.(*util.APIError)
	require.True(t, ok)
	assert.Equal(t, util.CodeInvalidInput, apiErr.Code)
	assert.Equal(t, 400, apiErr.Status)
}

func TestParseSubmissionFilterValid(t *testing.T) {
	oid := primitive.NewObjectID()

	f, err := ParseSubmissionFilter("acme", oid.Hex(), "cand-1", "completed", "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	built := f.Build()
	assert.Equal(t, "acme", built["tenantId"])
	assert.Equal(t, oid, built["assessmentId"])
	assert.Equal(t, "cand-1", built["candidateId"])
	assert.Equal(t, "completed", built["status"])

	rng, ok := built["submittedAt"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rng["$gte"])
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), rng["$lte"])
}

func TestParseSubmissionFilterDropsInvalidDates(t *testing.T) {
	f, err := ParseSubmissionFilter("acme", "", "", "", "not-a-date", "2024-02-01")
	require.NoError(t, err, "bad dates are dropped, not rejected")

	rng := f.Build()["submittedAt"].(bson.M)
	_, hasFrom := rng["$gte"]
	assert.False(t, hasFrom)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), rng["$lte"])
}

func TestParseSubmissionFilterOmitsEmptyRange(t *testing.T) {
	f, err := ParseSubmissionFilter("acme", "", "", "", "bogus", "also-bogus")
	require.NoError(t, err)

	_, present := f.Build()["submittedAt"]
	assert.False(t, present, "a range with no valid bound must be omitted entirely")
}

func TestParseDateLayouts(t *testing.T) {
	d := ParseDate("2024-06-15")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *d)

	d = ParseDate("2024-06-15T10:30:00Z")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), *d)

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("15/06/2024"))
}
