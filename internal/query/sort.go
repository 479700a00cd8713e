package query

import "go.mongodb.org/mongo-driver/bson"

// assessmentSortFields is the sortable allow-list; each entry maps onto a
// declared (tenantId, field) compound index.
var assessmentSortFields = map[string]bool{
	"createdAt": true,
	"name":      true,
}

// AssessmentSort resolves a requested sort against the allow-list. Unknown
// fields fall back to createdAt rather than erroring; order is descending
// unless "asc" is requested.
func AssessmentSort(sortBy, sortOrder string) bson.D {
	field := "createdAt"
	if assessmentSortFields[sortBy] {
		field = sortBy
	}

	order := -1
	if sortOrder == "asc" {
		order = 1
	}

	return bson.D{{Key: field, Value: order}}
}

// SubmissionSort is fixed: newest first with _id as tie-break, so pagination
// order stays deterministic across pages even when many documents share the
// same submittedAt. Matches the (tenantId, assessmentId, submittedAt) index.
func SubmissionSort() bson.D {
	return bson.D{{Key: "submittedAt", Value: -1}, {Key: "_id", Value: -1}}
}
