package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) Insert(ctx context.Context, d *Doctor) (*store.InsertResult, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `INSERT INTO doctors (id, email, name, specialty, image) VALUES ($1,$2,$3,$4,$5)`,
		id, d.Email, d.Name, d.Specialty, d.Image)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	d.ID = id.String()
	return &store.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, name, specialty, image FROM doctors ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query doctors: %w", err)
	}
	defer rows.Close()
	items := []*Doctor{}
	for rows.Next() {
		var (
			d  Doctor
			id uuid.UUID
		)
		if err := rows.Scan(&id, &d.Email, &d.Name, &d.Specialty, &d.Image); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		d.ID = id.String()
		items = append(items, &d)
	}
	return items, rows.Err()
}

// DeleteByEmail matches the document store's delete-one semantics when an
// email appears on more than one row.
func (r *doctorRepoPG) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM doctors WHERE id = (
			SELECT id FROM doctors WHERE email = $1 ORDER BY created_at LIMIT 1
		)`, email)
	if err != nil {
		return nil, fmt.Errorf("delete doctor: %w", err)
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
