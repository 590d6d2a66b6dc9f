package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doctorsportal/portal/internal/domain/booking"
	"github.com/doctorsportal/portal/internal/platform/store"
)

var ErrDateRequired = errors.New("date query parameter is required")

type Service struct {
	repo     AppointmentTypeRepository
	bookings BookingLister
}

func NewService(repo AppointmentTypeRepository, bookings BookingLister) *Service {
	return &Service{repo: repo, bookings: bookings}
}

func (s *Service) ListNames(ctx context.Context) ([]Summary, error) {
	return s.repo.ListNames(ctx)
}

// Available returns every appointment type with the slots already booked on
// date removed.
func (s *Service) Available(ctx context.Context, date string) ([]*AppointmentType, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrDateRequired
	}
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointment types: %w", err)
	}
	taken, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", date, err)
	}
	return OpenSlots(types, taken), nil
}

// OpenSlots subtracts booked slots from each type's catalog. A booking only
// removes a slot from the type whose name it carries. The input types are
// not modified and slot order is preserved.
func OpenSlots(types []*AppointmentType, taken []*booking.Booking) []*AppointmentType {
	booked := make(map[string]map[string]struct{})
	for _, b := range taken {
		slots, ok := booked[b.AppointName]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.AppointName] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]*AppointmentType, 0, len(types))
	for _, t := range types {
		open := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			if _, ok := booked[t.Name][slot]; !ok {
				open = append(open, slot)
			}
		}
		cp := *t
		cp.Slots = open
		out = append(out, &cp)
	}
	return out
}

// Seed creates each appointment type, skipping names that already exist.
// It returns how many were created.
func (s *Service) Seed(ctx context.Context, types []*AppointmentType) (int, error) {
	created := 0
	for i, t := range types {
		if t.Name == "" {
			return created, fmt.Errorf("appointment type at position %d has no name", i)
		}
		err := s.repo.Create(ctx, t)
		if errors.Is(err, store.ErrDuplicate) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("create %q: %w", t.Name, err)
		}
		created++
	}
	return created, nil
}
