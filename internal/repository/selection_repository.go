package repository

import (
	"context"
	"fmt"

	"github.com/sumaiya48/summer-camp-server/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SelectionRepository handles selectedClasses-collection access.
type SelectionRepository struct {
	coll *mongo.Collection
}

// NewSelectionRepository creates a new SelectionRepository.
func NewSelectionRepository(db *mongo.Database) *SelectionRepository {
	return &SelectionRepository{coll: db.Collection("selectedClasses")}
}

// Insert records an enrollment intent.
func (r *SelectionRepository) Insert(ctx context.Context, selection *model.Selection) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, selection)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}
	return &model.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// ListByUserEmail retrieves selections for a user, matched by exact
// equality on userEmail.
func (r *SelectionRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Selection, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find selections: %w", err)
	}

	selections := make([]model.Selection, 0)
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	return selections, nil
}

// Delete removes a selection by id. A missing id yields DeletedCount 0.
func (r *SelectionRepository) Delete(ctx context.Context, id string) (*model.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse selection id: %w", err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete selection: %w", err)
	}
	return &model.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
