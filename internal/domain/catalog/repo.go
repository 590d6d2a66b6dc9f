package catalog

import (
	"context"

	"github.com/doctorsportal/portal/internal/domain/booking"
)

// AppointmentTypeRepository lists appointment types in catalog order.
// Create returns store.ErrDuplicate when the name is taken.
type AppointmentTypeRepository interface {
	List(ctx context.Context) ([]*AppointmentType, error)
	ListNames(ctx context.Context) ([]Summary, error)
	Create(ctx context.Context, t *AppointmentType) error
}

// BookingLister is the slice of the booking component availability needs.
type BookingLister interface {
	ListByDate(ctx context.Context, appointmentDate string) ([]*booking.Booking, error)
}
