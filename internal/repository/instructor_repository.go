package repository

import (
	"context"
	"fmt"

	"github.com/sumaiya48/summer-camp-server/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InstructorRepository handles instructors-collection access. This API only
// reads profiles; writes happen through the seeding tool.
type InstructorRepository struct {
	coll *mongo.Collection
}

// NewInstructorRepository creates a new InstructorRepository.
func NewInstructorRepository(db *mongo.Database) *InstructorRepository {
	return &InstructorRepository{coll: db.Collection("instructors")}
}

// List retrieves instructor profiles, capped at limit when limit > 0.
func (r *InstructorRepository) List(ctx context.Context, limit int64) ([]model.Instructor, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find instructors: %w", err)
	}

	instructors := make([]model.Instructor, 0)
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, fmt.Errorf("decode instructors: %w", err)
	}
	return instructors, nil
}

// Insert adds an instructor profile. Used by cmd/seed-demo only.
func (r *InstructorRepository) Insert(ctx context.Context, instructor *model.Instructor) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, instructor)
	if err != nil {
		return nil, fmt.Errorf("insert instructor: %w", err)
	}
	return &model.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}
