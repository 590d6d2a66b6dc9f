package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type userRepoPG struct{ pool *pgxpool.Pool }

func NewUserRepoPG(pool *pgxpool.Pool) UserRepository {
	return &userRepoPG{pool: pool}
}

const userCols = `id, email, name, phone, photo, COALESCE(role, '')`

func scanUser(row pgx.Row) (*User, error) {
	var (
		u    User
		id   uuid.UUID
		role string
	)
	if err := row.Scan(&id, &u.Email, &u.Name, &u.Phone, &u.Photo, &role); err != nil {
		return nil, err
	}
	u.ID = id.String()
	u.Role = Role(role)
	return &u, nil
}

// UpsertProfile keeps existing column values for nil fields. xmax = 0 only
// holds for freshly inserted rows.
func (r *userRepoPG) UpsertProfile(ctx context.Context, email string, p ProfileUpdate) (*store.UpdateResult, error) {
	var (
		id       uuid.UUID
		inserted bool
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, name, phone, photo)
		VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''))
		ON CONFLICT (email) DO UPDATE SET
			name = COALESCE($3, users.name),
			phone = COALESCE($4, users.phone),
			photo = COALESCE($5, users.photo),
			updated_at = NOW()
		RETURNING id, (xmax = 0)`,
		uuid.New(), email, p.Name, p.Phone, p.Photo).Scan(&id, &inserted)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", store.Translate(err))
	}
	if inserted {
		return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.String()}, nil
	}
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *userRepoPG) SetRole(ctx context.Context, email string, role Role) (*store.UpdateResult, error) {
	var value *string
	if role != RoleNone {
		s := string(role)
		value = &s
	}
	tag, err := r.pool.Exec(ctx, `UPDATE users SET role = $2, updated_at = NOW() WHERE email = $1`, email, value)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	n := tag.RowsAffected()
	return &store.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (r *userRepoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, store.Translate(err)
	}
	return u, nil
}

func (r *userRepoPG) List(ctx context.Context) ([]*User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()
	users := []*User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepoPG) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
