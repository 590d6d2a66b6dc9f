package billing

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/portal/internal/platform/db"
)

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BookingID     string             `bson:"appointment"`
	TransactionID string             `bson:"transactionId"`
	Price         float64            `bson:"price"`
	Email         string             `bson:"email,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

type paymentRepoMongo struct{ coll *mongo.Collection }

func NewPaymentRepoMongo(database *mongo.Database) PaymentRepository {
	return &paymentRepoMongo{coll: database.Collection(db.CollectionPayments)}
}

func (r *paymentRepoMongo) Insert(ctx context.Context, p *Payment) error {
	res, err := r.coll.InsertOne(ctx, paymentDoc{
		BookingID:     p.BookingID,
		TransactionID: p.TransactionID,
		Price:         p.Price,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	p.ID = oid.Hex()
	return nil
}
