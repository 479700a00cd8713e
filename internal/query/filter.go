package query

import (
	"regexp"
	"strings"
	"time"

	"assessment_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssessmentFilter holds the validated assessment list filters. TenantID is
// mandatory; everything else composes with logical AND.
type AssessmentFilter struct {
	TenantID string
	Status   string
	Search   string
}

// Build compiles the filter to a Mongo predicate. The search term is treated
// as a literal: every pattern metacharacter is escaped, and the match is
// anchored at the start so the (tenantId, name) index stays usable. Full
// substring scans are not supported.
func (f AssessmentFilter) Build() bson.M {
	filter := bson.M{"tenantId": f.TenantID}

	if f.Status != "" {
		filter["status"] = f.Status
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		filter["name"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(s),
			Options: "i",
		}
	}

	return filter
}

// SubmissionFilter holds the validated submission list filters.
type SubmissionFilter struct {
	TenantID     string
	AssessmentID *primitive.ObjectID
	CandidateID  string
	Status       string
	From         *time.Time
	To           *time.Time
}

// ParseSubmissionFilter validates raw query values into a SubmissionFilter.
// A malformed assessmentId fails with invalid_input before any store call;
// unparseable date bounds are silently dropped.
func ParseSubmissionFilter(tenantID, assessmentID, candidateID, status, from, to string) (SubmissionFilter, error) {
	f := SubmissionFilter{
		TenantID:    tenantID,
		CandidateID: strings.TrimSpace(candidateID),
		Status:      status,
		From:        ParseDate(from),
		To:          ParseDate(to),
	}

	if raw := strings.TrimSpace(assessmentID); raw != "" {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return SubmissionFilter{}, util.NewInvalidInput("Invalid assessmentId")
		}
		f.AssessmentID = &oid
	}

	return f, nil
}

func (f SubmissionFilter) Build() bson.M {
	filter := bson.M{"tenantId": f.TenantID}

	if f.AssessmentID != nil {
		filter["assessmentId"] = *f.AssessmentID
	}
	if f.CandidateID != "" {
		filter["candidateId"] = f.CandidateID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if rng := DateRange(f.From, f.To); rng != nil {
		filter["submittedAt"] = rng
	}

	return filter
}

// DateRange builds the submittedAt clause; nil when no bound survived
// parsing, so the clause is omitted entirely.
func DateRange(from, to *time.Time) bson.M {
	if from == nil && to == nil {
		return nil
	}
	rng := bson.M{}
	if from != nil {
		rng["$gte"] = *from
	}
	if to != nil {
		rng["$lte"] = *to
	}
	return rng
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses an ISO timestamp or plain date; anything else yields nil.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
