package booking

import (
	"context"

	"github.com/doctorsportal/portal/internal/platform/store"
)

// BookingRepository returns store.ErrNotFound for absent bookings,
// store.ErrInvalidID for ids the backend cannot parse and store.ErrDuplicate
// when an insert collides with an existing triple.
type BookingRepository interface {
	FindByTriple(ctx context.Context, appointName, appointmentDate, patientName string) (*Booking, error)
	Insert(ctx context.Context, b *Booking) (*store.InsertResult, error)
	ListByDate(ctx context.Context, appointmentDate string) ([]*Booking, error)
	ListByOwner(ctx context.Context, email string) ([]*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	// MarkPaid only matches bookings that are still unpaid.
	MarkPaid(ctx context.Context, id, transactionID string) (*store.UpdateResult, error)
}

// PaymentRecorder appends an entry to the payment log and returns its id.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, bookingID, transactionID string, price float64, email string) (string, error)
}
