package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/payment"
)

// PaymentRepository is the payments-collection access the service layer
// needs. Payments are append-only.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *model.Payment) (*model.InsertAck, error)
}

// PaymentService stages payment intents with the processor and records
// completed transactions.
type PaymentService struct {
	paymentRepo   PaymentRepository
	selectionRepo SelectionRepository
	intents       payment.IntentCreator
	log           zerolog.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo PaymentRepository, selectionRepo SelectionRepository, intents payment.IntentCreator, log zerolog.Logger) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, selectionRepo: selectionRepo, intents: intents, log: log}
}

// CreateIntent stages a card payment for the given major-unit total and
// returns the client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, totalPrice float64) (string, error) {
	secret, err := s.intents.CreateIntent(ctx, totalPrice)
	if err != nil {
		return "", fmt.Errorf("payment intent: %w", err)
	}
	return secret, nil
}

// Record appends the payment and then removes the referenced selection. The
// store offers no multi-document transaction, so the cleanup is a
// compensating second write: if it fails, the payment stands and the orphaned
// selection is logged with the payment id for reconciliation.
func (s *PaymentService) Record(ctx context.Context, p *model.Payment) (*model.PaymentAck, error) {
	ack, err := s.paymentRepo.Insert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	result := &model.PaymentAck{InsertAck: *ack}

	if p.SelectedClassID != "" {
		del, err := s.selectionRepo.Delete(ctx, p.SelectedClassID)
		if err != nil {
			s.log.Error().
				Err(err).
				Interface("payment_id", ack.InsertedID).
				Str("selection_id", p.SelectedClassID).
				Msg("selection cleanup failed after payment")
			return result, nil
		}
		result.SelectionRemoved = del.DeletedCount > 0
	}

	return result, nil
}
