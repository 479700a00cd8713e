package repository

import (
	"context"

	"assessment_backend/internal/model"
	"assessment_backend/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Submission list projections never include the responses payload; it can be
// megabytes per document and no list or report endpoint needs it.
var (
	// Cross-assessment listing keeps assessmentId so rows stay attributable.
	SubmissionListProjection = bson.M{
		"tenantId":        1,
		"assessmentId":    1,
		"candidateId":     1,
		"status":          1,
		"score":           1,
		"submittedAt":     1,
		"durationSeconds": 1,
		"createdAt":       1,
	}

	// Per-assessment listing, used by reporting UIs. The assessment is
	// already fixed by the path, so only per-candidate fields are returned.
	AssessmentSubmissionProjection = bson.M{
		"tenantId":        1,
		"candidateId":     1,
		"status":          1,
		"score":           1,
		"submittedAt":     1,
		"durationSeconds": 1,
	}
)

type SubmissionRepository struct {
	coll *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{coll: db.Collection(model.Submission{}.CollectionName())}
}

// List pages submissions with the fixed (submittedAt desc, _id desc) sort;
// fetch and count run concurrently.
func (r *SubmissionRepository) List(ctx context.Context, filter bson.M, projection bson.M, pg query.Pagination) ([]model.Submission, int64, error) {
	countCh := asyncCount(ctx, r.coll, filter)

	opts := options.Find().
		SetSort(query.SubmissionSort()).
		SetSkip(pg.Skip()).
		SetLimit(int64(pg.Limit)).
		SetProjection(projection)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		<-countCh
		return nil, 0, err
	}

	items := []model.Submission{}
	if err := cur.All(ctx, &items); err != nil {
		<-countCh
		return nil, 0, err
	}

	count := <-countCh
	if count.err != nil {
		return nil, 0, count.err
	}

	return items, count.total, nil
}

// Insert stores a new submission and writes the generated id back.
func (r *SubmissionRepository) Insert(ctx context.Context, s *model.Submission) error {
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}
