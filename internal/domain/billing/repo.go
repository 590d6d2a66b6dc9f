package billing

import "context"

type PaymentRepository interface {
	Insert(ctx context.Context, p *Payment) error
}
