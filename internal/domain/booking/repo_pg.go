package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type bookingRepoPG struct{ pool *pgxpool.Pool }

func NewBookingRepoPG(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepoPG{pool: pool}
}

const bookingCols = `id, appoint_name, appointment_date, patient_name, patient_identify,
	slot, price, phone, paid, COALESCE(transaction_id, '')`

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b  Booking
		id uuid.UUID
	)
	err := row.Scan(&id, &b.AppointName, &b.AppointmentDate, &b.PatientName, &b.PatientIdentify,
		&b.Slot, &b.Price, &b.Phone, &b.Paid, &b.TransactionID)
	if err != nil {
		return nil, err
	}
	b.ID = id.String()
	return &b, nil
}

func (r *bookingRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()
	items := []*Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *bookingRepoPG) FindByTriple(ctx context.Context, appointName, appointmentDate, patientName string) (*Booking, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, `SELECT `+bookingCols+` FROM bookings
		WHERE appoint_name = $1 AND appointment_date = $2 AND patient_name = $3`,
		appointName, appointmentDate, patientName))
	if err != nil {
		return nil, store.Translate(err)
	}
	return b, nil
}

func (r *bookingRepoPG) Insert(ctx context.Context, b *Booking) (*store.InsertResult, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (id, appoint_name, appointment_date, patient_name, patient_identify,
			slot, price, phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		id, b.AppointName, b.AppointmentDate, b.PatientName, b.PatientIdentify,
		b.Slot, b.Price, b.Phone)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", store.Translate(err))
	}
	b.ID = id.String()
	return &store.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (r *bookingRepoPG) ListByDate(ctx context.Context, appointmentDate string) ([]*Booking, error) {
	return r.query(ctx, `SELECT `+bookingCols+` FROM bookings WHERE appointment_date = $1 ORDER BY created_at`, appointmentDate)
}

func (r *bookingRepoPG) ListByOwner(ctx context.Context, email string) ([]*Booking, error) {
	return r.query(ctx, `SELECT `+bookingCols+` FROM bookings WHERE patient_identify = $1 ORDER BY created_at`, email)
}

func (r *bookingRepoPG) GetByID(ctx context.Context, id string) (*Booking, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	b, err := scanBooking(r.pool.QueryRow(ctx, `SELECT `+bookingCols+` FROM bookings WHERE id = $1`, uid))
	if err != nil {
		return nil, store.Translate(err)
	}
	return b, nil
}

func (r *bookingRepoPG) MarkPaid(ctx context.Context, id, transactionID string) (*store.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET paid = TRUE, transaction_id = $2
		WHERE id = $1 AND paid = FALSE`, uid, transactionID)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	n := tag.RowsAffected()
	return &store.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}
