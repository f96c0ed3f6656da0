// Package payment bridges to the external card-payment processor.
package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentCreator stages a card payment with the processor for a major-unit
// price and returns the client-side secret used to complete it.
type IntentCreator interface {
	CreateIntent(ctx context.Context, totalPrice float64) (clientSecret string, err error)
}

// MinorUnits converts a major-unit price to the processor's minor unit,
// assuming a two-decimal currency. Zero and negative amounts pass through
// unchecked; the processor is the arbiter of what it accepts.
func MinorUnits(totalPrice float64) int64 {
	return int64(math.Round(totalPrice * 100))
}

// StripeBridge creates card payment intents through the Stripe API in a
// fixed currency. No idempotency key is attached, so a retried request
// stages a fresh intent.
type StripeBridge struct {
	api *client.API
}

// NewStripeBridge creates a StripeBridge with the given secret key.
func NewStripeBridge(secretKey string) *StripeBridge {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeBridge{api: api}
}

// CreateIntent implements IntentCreator.
func (b *StripeBridge) CreateIntent(ctx context.Context, totalPrice float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(totalPrice)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := b.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
