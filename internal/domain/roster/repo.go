package roster

import (
	"context"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type DoctorRepository interface {
	Insert(ctx context.Context, d *Doctor) (*store.InsertResult, error)
	List(ctx context.Context) ([]*Doctor, error)
	// DeleteByEmail removes at most one doctor.
	DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error)
}
