package database

import (
	"context"
	"fmt"
	"time"

	"assessment_backend/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo connects a pooled client, verifies the deployment is reachable
// and declares the secondary indexes every query path relies on.
func InitMongo(cfg *config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetServerSelectionTimeout(time.Duration(cfg.ServerSelectionTimeout) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return client, db, nil
}

// ensureIndexes declares the compound indexes backing every allow-listed
// filter+sort combination. Each index leads with tenantId so tenant-scoped
// predicates stay index-covered at any collection size.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	assessmentIndexes := []mongo.IndexModel{
		// Listing by tenant, newest first
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "createdAt", Value: -1}}},
		// Filter by status, sort by createdAt
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		// Anchored prefix search on name
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "name", Value: 1}}},
	}
	if _, err := db.Collection("assessments").Indexes().CreateMany(ctx, assessmentIndexes); err != nil {
		return err
	}

	submissionIndexes := []mongo.IndexModel{
		// Submissions of one assessment ordered by time
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "assessmentId", Value: 1}, {Key: "submittedAt", Value: -1}}},
		// Candidate history within a tenant
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "candidateId", Value: 1}, {Key: "submittedAt", Value: -1}}},
		// Status reporting per tenant
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "status", Value: 1}, {Key: "submittedAt", Value: -1}}},
		// Score reporting per assessment
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "assessmentId", Value: 1}, {Key: "score", Value: -1}}},
	}
	if _, err := db.Collection("submissions").Indexes().CreateMany(ctx, submissionIndexes); err != nil {
		return err
	}

	return nil
}
