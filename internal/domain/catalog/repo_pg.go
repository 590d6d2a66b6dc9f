package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type appointmentTypeRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentTypeRepoPG(pool *pgxpool.Pool) AppointmentTypeRepository {
	return &appointmentTypeRepoPG{pool: pool}
}

func (r *appointmentTypeRepoPG) List(ctx context.Context) ([]*AppointmentType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slots, price FROM appointment_types ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query appointment types: %w", err)
	}
	defer rows.Close()
	items := []*AppointmentType{}
	for rows.Next() {
		var (
			t  AppointmentType
			id uuid.UUID
		)
		if err := rows.Scan(&id, &t.Name, &t.Slots, &t.Price); err != nil {
			return nil, fmt.Errorf("scan appointment type: %w", err)
		}
		t.ID = id.String()
		items = append(items, &t)
	}
	return items, rows.Err()
}

func (r *appointmentTypeRepoPG) ListNames(ctx context.Context) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM appointment_types ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query appointment names: %w", err)
	}
	defer rows.Close()
	items := []Summary{}
	for rows.Next() {
		var (
			s  Summary
			id uuid.UUID
		)
		if err := rows.Scan(&id, &s.Name); err != nil {
			return nil, fmt.Errorf("scan appointment name: %w", err)
		}
		s.ID = id.String()
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *appointmentTypeRepoPG) Create(ctx context.Context, t *AppointmentType) error {
	id := uuid.New()
	slots := t.Slots
	if slots == nil {
		slots = []string{}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO appointment_types (id, name, slots, price) VALUES ($1,$2,$3,$4)`,
		id, t.Name, slots, t.Price)
	if err != nil {
		return fmt.Errorf("insert appointment type: %w", store.Translate(err))
	}
	t.ID = id.String()
	return nil
}
