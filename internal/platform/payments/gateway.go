// Package payments talks to the card payment processor. It only creates
// payment intents; confirmation happens client-side and is reported back
// through the booking API.
package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrNotConfigured is returned when no processor key was supplied.
var ErrNotConfigured = errors.New("payment processor is not configured")

// Intent is the processor-side pending payment handed back to the caller.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// IntentGateway creates card payment intents for an amount in minor units.
type IntentGateway interface {
	CreateCardIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// ToMinorUnits converts a major-unit price to cents, rounding half away from
// zero so 19.99 becomes 1999 rather than 1998.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway with its own stripe client rather than
// the package-level stripe.Key.
func NewStripeGateway(secretKey string) *StripeGateway {
	return NewStripeGatewayWithBackends(secretKey, nil)
}

// NewStripeGatewayWithBackends lets callers point the client at a different
// API host. nil selects the stripe defaults.
func NewStripeGatewayWithBackends(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

func (g *StripeGateway) CreateCardIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// Unconfigured rejects every request; it stands in for the processor in
// development when STRIPE_SECRET_KEY is unset.
type Unconfigured struct{}

func (Unconfigured) CreateCardIntent(context.Context, int64, string) (*Intent, error) {
	return nil, ErrNotConfigured
}
