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

// assessmentListProjection is the explicit field allow-list for assessment
// listings. Description and metadata can be large and are only returned on
// detail fetches.
var assessmentListProjection = bson.M{
	"tenantId":  1,
	"name":      1,
	"status":    1,
	"tags":      1,
	"createdAt": 1,
	"updatedAt": 1,
}

var assessmentDetailProjection = bson.M{
	"tenantId":    1,
	"name":        1,
	"description": 1,
	"status":      1,
	"tags":        1,
	"metadata":    1,
	"createdAt":   1,
	"updatedAt":   1,
}

type AssessmentRepository struct {
	coll *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{coll: db.Collection(model.Assessment{}.CollectionName())}
}

// List runs the bounded fetch and the total count concurrently against the
// same predicate and joins the results.
func (r *AssessmentRepository) List(ctx context.Context, filter bson.M, sort bson.D, pg query.Pagination) ([]model.Assessment, int64, error) {
	countCh := asyncCount(ctx, r.coll, filter)

	opts := options.Find().
		SetSort(sort).
		SetSkip(pg.Skip()).
		SetLimit(int64(pg.Limit)).
		SetProjection(assessmentListProjection)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		<-countCh
		return nil, 0, err
	}

	items := []model.Assessment{}
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

// FindByID fetches one assessment scoped to the tenant. Returns
// mongo.ErrNoDocuments when nothing matches; the service layer maps that to
// the client-facing not-found error.
func (r *AssessmentRepository) FindByID(ctx context.Context, tenantID string, id primitive.ObjectID) (*model.Assessment, error) {
	opts := options.FindOne().SetProjection(assessmentDetailProjection)

	var a model.Assessment
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}, opts).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
