package service

import (
	"context"

	"github.com/sumaiya48/summer-camp-server/internal/model"
)

// SelectionRepository is the selectedClasses-collection access the service
// layer needs.
type SelectionRepository interface {
	Insert(ctx context.Context, selection *model.Selection) (*model.InsertAck, error)
	ListByUserEmail(ctx context.Context, email string) ([]model.Selection, error)
	Delete(ctx context.Context, id string) (*model.DeleteAck, error)
}

// SelectionService handles enrollment intents.
type SelectionService struct {
	selectionRepo SelectionRepository
}

// NewSelectionService creates a new SelectionService.
func NewSelectionService(selectionRepo SelectionRepository) *SelectionService {
	return &SelectionService{selectionRepo: selectionRepo}
}

// Create records a student's intent to enroll.
func (s *SelectionService) Create(ctx context.Context, selection *model.Selection) (*model.InsertAck, error) {
	return s.selectionRepo.Insert(ctx, selection)
}

// ListByUserEmail returns a user's selections, matched by exact equality on
// the userEmail field.
func (s *SelectionService) ListByUserEmail(ctx context.Context, email string) ([]model.Selection, error) {
	return s.selectionRepo.ListByUserEmail(ctx, email)
}

// Delete cancels a selection by id. A missing id yields deletedCount 0.
func (s *SelectionService) Delete(ctx context.Context, id string) (*model.DeleteAck, error) {
	return s.selectionRepo.Delete(ctx, id)
}
