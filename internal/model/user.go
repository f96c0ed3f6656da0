package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is a user's access level.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User represents a registered account. Email is the stable identity key
// across every collection; referential integrity is advisory only.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`
}

// EffectiveRole returns the stored role, or the lowest-privilege default
// when no role was ever assigned.
func (u *User) EffectiveRole() Role {
	if u == nil || u.Role == "" {
		return RoleStudent
	}
	return u.Role
}
