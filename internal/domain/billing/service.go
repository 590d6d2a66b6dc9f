package billing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/doctorsportal/portal/internal/platform/payments"
)

var ErrInvalidAmount = errors.New("price must be a positive amount")

type Service struct {
	repo     PaymentRepository
	gateway  payments.IntentGateway
	currency string
	now      func() time.Time
}

func NewService(repo PaymentRepository, gateway payments.IntentGateway, currency string) *Service {
	return &Service{
		repo:     repo,
		gateway:  gateway,
		currency: strings.ToLower(currency),
		now:      time.Now,
	}
}

// RecordPayment appends a payment log entry and returns its id.
func (s *Service) RecordPayment(ctx context.Context, bookingID, transactionID string, price float64, email string) (string, error) {
	p := &Payment{
		BookingID:     bookingID,
		TransactionID: transactionID,
		Price:         price,
		Email:         email,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// CreateIntent asks the processor for a card intent worth price in the
// configured currency and returns the client secret.
func (s *Service) CreateIntent(ctx context.Context, price float64) (*IntentResponse, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, ErrInvalidAmount
	}
	amount := payments.ToMinorUnits(price)
	if amount < 1 {
		return nil, ErrInvalidAmount
	}
	intent, err := s.gateway.CreateCardIntent(ctx, amount, s.currency)
	if err != nil {
		return nil, fmt.Errorf("create intent for %d %s: %w", amount, s.currency, err)
	}
	return &IntentResponse{ClientSecret: intent.ClientSecret}, nil
}
