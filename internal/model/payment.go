package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the append-only record of a completed transaction. It is
// never updated or deleted.
type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Amount          float64            `bson:"amount" json:"amount"`
	ClassID         string             `bson:"classId,omitempty" json:"classId,omitempty"`
	ClassName       string             `bson:"className,omitempty" json:"className,omitempty"`
	SelectedClassID string             `bson:"selectedClassId,omitempty" json:"selectedClassId,omitempty"`
	Date            time.Time          `bson:"date" json:"date"`
}
