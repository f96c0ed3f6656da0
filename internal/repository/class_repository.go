package repository

import (
	"context"
	"fmt"

	"github.com/sumaiya48/summer-camp-server/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClassRepository handles classes-collection access.
type ClassRepository struct {
	coll *mongo.Collection
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection("classes")}
}

func (r *ClassRepository) find(ctx context.Context, filter bson.M, limit int64) ([]model.Class, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}

	classes := make([]model.Class, 0)
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}

// ListByStatus retrieves classes in a given review status, capped at limit
// when limit > 0.
func (r *ClassRepository) ListByStatus(ctx context.Context, status model.ClassStatus, limit int64) ([]model.Class, error) {
	return r.find(ctx, bson.M{"status": status}, limit)
}

// ListAll retrieves every class regardless of status.
func (r *ClassRepository) ListAll(ctx context.Context, limit int64) ([]model.Class, error) {
	return r.find(ctx, bson.M{}, limit)
}

// ListByEmail retrieves classes owned by an instructor email, matched by
// exact equality.
func (r *ClassRepository) ListByEmail(ctx context.Context, email string) ([]model.Class, error) {
	return r.find(ctx, bson.M{"email": email}, 0)
}

// Insert adds a new class document.
func (r *ClassRepository) Insert(ctx context.Context, class *model.Class) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return &model.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// UpdateStatus sets the status field on the class with the given id.
func (r *ClassRepository) UpdateStatus(ctx context.Context, id string, status model.ClassStatus) (*model.UpdateAck, error) {
	return r.setField(ctx, id, "status", status)
}

// SetFeedback sets the feedback field on the class with the given id.
func (r *ClassRepository) SetFeedback(ctx context.Context, id string, feedback string) (*model.UpdateAck, error) {
	return r.setField(ctx, id, "feedback", feedback)
}

func (r *ClassRepository) setField(ctx context.Context, id, field string, value interface{}) (*model.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse class id: %w", err)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return nil, fmt.Errorf("update class %s: %w", field, err)
	}
	return &model.UpdateAck{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes a class by id. A missing id yields DeletedCount 0.
func (r *ClassRepository) Delete(ctx context.Context, id string) (*model.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse class id: %w", err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete class: %w", err)
	}
	return &model.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
