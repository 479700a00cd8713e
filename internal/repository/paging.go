package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type countResult struct {
	total int64
	err   error
}

// asyncCount runs the total-count query for a page concurrently with the
// bounded fetch. The two reads share a predicate but no snapshot, so the
// total may lag the item set under concurrent writes; list endpoints accept
// that trade-off.
func asyncCount(ctx context.Context, coll *mongo.Collection, filter bson.M) <-chan countResult {
	ch := make(chan countResult, 1)
	go func() {
		total, err := coll.CountDocuments(ctx, filter)
		ch <- countResult{total: total, err: err}
	}()
	return ch
}
