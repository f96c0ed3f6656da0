package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Instructor is a public profile record, read-only from this API.
type Instructor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	NumberOfClasses int                `bson:"numberOfClasses,omitempty" json:"numberOfClasses,omitempty"`
}
