package repository

import (
	"context"
	"fmt"

	"github.com/sumaiya48/summer-camp-server/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository handles payments-collection access. The collection is
// append-only: no update or delete exists at any layer.
type PaymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection("payments")}
}

// Insert appends a payment record.
func (r *PaymentRepository) Insert(ctx context.Context, payment *model.Payment) (*model.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return &model.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}
