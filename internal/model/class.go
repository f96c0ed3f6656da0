package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClassStatus tracks a class through admin review. Only approved classes
// appear in the public listing.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Class is a course offered by an instructor.
type Class struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName      string             `bson:"className" json:"className"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Price          float64            `bson:"price" json:"price"`
	AvailableSeats int                `bson:"availableSeats" json:"availableSeats"`
	Status         ClassStatus        `bson:"status,omitempty" json:"status,omitempty"`
	Feedback       string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
