package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Selection is a student's intent to enroll in a class before payment.
// Display fields are denormalized from the class at selection time.
type Selection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassID        string             `bson:"classId" json:"classId"`
	ClassName      string             `bson:"className,omitempty" json:"className,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	UserEmail      string             `bson:"userEmail" json:"userEmail"`
}
