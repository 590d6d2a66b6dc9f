package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/doctorsportal/portal/internal/platform/db/dbtest"
)

func TestPaymentRepoPG_Insert(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := NewPaymentRepoPG(pool)
	ctx := context.Background()

	p := &Payment{
		BookingID:     "b-1",
		TransactionID: "pi_123",
		Price:         25.5,
		Email:         "alice@example.com",
		CreatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Insert(ctx, p); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected id to be assigned")
	}

	var (
		bookingID, transactionID string
		price                    float64
	)
	err := pool.QueryRow(ctx, `SELECT booking_id, transaction_id, price FROM payments WHERE id = $1`, uuid.MustParse(p.ID)).
		Scan(&bookingID, &transactionID, &price)
	if err != nil {
		t.Fatalf("read payment: %v", err)
	}
	if bookingID != "b-1" || transactionID != "pi_123" || price != 25.5 {
		t.Errorf("unexpected stored payment %s %s %v", bookingID, transactionID, price)
	}
}
