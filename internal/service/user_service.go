package service

import (
	"context"
	"fmt"

	"github.com/sumaiya48/summer-camp-server/internal/model"
)

// UserRepository is the users-collection access the service layer needs.
// Lookups by email return (nil, nil) when no document matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) (*model.InsertAck, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id string, role model.Role) (*model.UpdateAck, error)
}

// RoleView is the role projection returned by GET /users/role.
type RoleView struct {
	Role model.Role `json:"role"`
}

// DetailsView is the profile projection returned by GET /users/details.
type DetailsView struct {
	Name     string     `json:"name,omitempty"`
	Email    string     `json:"email"`
	PhotoURL string     `json:"photoURL,omitempty"`
	Role     model.Role `json:"role,omitempty"`
}

// UserService handles account records and doubles as the role resolver for
// the access gates.
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateIfAbsent inserts the user unless one with the same email already
// exists. The second return reports whether the insert was skipped.
func (s *UserService) CreateIfAbsent(ctx context.Context, user *model.User) (*model.InsertAck, bool, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, true, nil
	}

	ack, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("insert user: %w", err)
	}
	return ack, false, nil
}

// List returns every user record.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// GetRole returns the role projection for an email, or nil when the user
// does not exist.
func (s *UserService) GetRole(ctx context.Context, email string) (*RoleView, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	return &RoleView{Role: user.EffectiveRole()}, nil
}

// GetDetails returns the profile projection for an email, or nil when the
// user does not exist.
func (s *UserService) GetDetails(ctx context.Context, email string) (*DetailsView, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	return &DetailsView{
		Name:     user.Name,
		Email:    user.Email,
		PhotoURL: user.PhotoURL,
		Role:     user.EffectiveRole(),
	}, nil
}

// UpdateRole sets the role on the user with the given id.
func (s *UserService) UpdateRole(ctx context.Context, id string, role model.Role) (*model.UpdateAck, error) {
	return s.userRepo.UpdateRole(ctx, id, role)
}

// ResolveRole implements authz.RoleResolver. A user that does not exist
// carries the lowest-privilege default and fails any elevated-role gate.
func (s *UserService) ResolveRole(ctx context.Context, email string) (model.Role, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return user.EffectiveRole(), nil
}
