package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/doctorsportal/portal/internal/platform/store"
)

var (
	ErrNotOwner    = errors.New("requested patient does not match the authenticated user")
	ErrAlreadyPaid = errors.New("booking is already paid")
)

type Service struct {
	repo     BookingRepository
	payments PaymentRecorder
}

func NewService(repo BookingRepository, payments PaymentRecorder) *Service {
	return &Service{repo: repo, payments: payments}
}

// Create stores b unless a booking with the same service, date and patient
// name exists, in which case the existing booking is returned with
// Success=false. New bookings always start unpaid.
func (s *Service) Create(ctx context.Context, b *Booking) (*CreateResult, error) {
	existing, err := s.repo.FindByTriple(ctx, b.AppointName, b.AppointmentDate, b.PatientName)
	switch {
	case err == nil:
		return &CreateResult{Success: false, Booking: existing}, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	b.ID = ""
	b.Paid = false
	b.TransactionID = ""

	res, err := s.repo.Insert(ctx, b)
	if errors.Is(err, store.ErrDuplicate) {
		// Lost a race with a concurrent insert of the same triple.
		winner, ferr := s.repo.FindByTriple(ctx, b.AppointName, b.AppointmentDate, b.PatientName)
		if ferr != nil {
			return nil, ferr
		}
		return &CreateResult{Success: false, Booking: winner}, nil
	}
	if err != nil {
		return nil, err
	}
	return &CreateResult{Success: true, Result: res}, nil
}

// ListByOwner returns the bookings owned by patient. The requester may only
// list their own bookings.
func (s *Service) ListByOwner(ctx context.Context, requester, patient string) ([]*Booking, error) {
	if patient == "" || patient != requester {
		return nil, ErrNotOwner
	}
	return s.repo.ListByOwner(ctx, patient)
}

func (s *Service) Get(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByDate backs availability: every booking taken on appointmentDate.
func (s *Service) ListByDate(ctx context.Context, appointmentDate string) ([]*Booking, error) {
	return s.repo.ListByDate(ctx, appointmentDate)
}

// MarkPaid records the payment and then flips the booking to paid. The two
// writes are not atomic: if the booking update fails the payment entry stays
// in the log and the gap is logged with both ids.
func (s *Service) MarkPaid(ctx context.Context, id string, sub PaymentSubmission) (*store.UpdateResult, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Paid {
		return nil, ErrAlreadyPaid
	}

	price := sub.Price
	if price == 0 {
		price = b.Price
	}
	email := sub.Email
	if email == "" {
		email = b.PatientIdentify
	}

	paymentID, err := s.payments.RecordPayment(ctx, b.ID, sub.TransactionID, price, email)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	res, err := s.repo.MarkPaid(ctx, b.ID, sub.TransactionID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("booking_id", b.ID).
			Str("payment_id", paymentID).
			Msg("payment recorded but booking was not marked paid")
		return nil, fmt.Errorf("mark booking paid: %w", err)
	}
	if res.MatchedCount == 0 {
		zerolog.Ctx(ctx).Warn().
			Str("booking_id", b.ID).
			Str("payment_id", paymentID).
			Msg("booking was paid concurrently; payment entry is orphaned")
		return nil, ErrAlreadyPaid
	}
	return res, nil
}
