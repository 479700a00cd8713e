package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AssessmentStatusDraft    = "draft"
	AssessmentStatusActive   = "active"
	AssessmentStatusArchived = "archived"
)

// Assessment belongs to exactly one tenant; tenantId is immutable after
// creation. High-volume tenants can hold very large numbers of assessments,
// so every query against this collection is tenant-scoped and index-aligned.
type Assessment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID    string             `bson:"tenantId" json:"tenantId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Metadata    bson.M             `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Assessment) CollectionName() string {
	return "assessments"
}
