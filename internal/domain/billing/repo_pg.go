package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type paymentRepoPG struct{ pool *pgxpool.Pool }

func NewPaymentRepoPG(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepoPG{pool: pool}
}

func (r *paymentRepoPG) Insert(ctx context.Context, p *Payment) error {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, booking_id, transaction_id, price, email, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		id, p.BookingID, p.TransactionID, p.Price, p.Email, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	p.ID = id.String()
	return nil
}
