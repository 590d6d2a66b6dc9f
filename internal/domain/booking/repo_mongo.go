package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/portal/internal/platform/db"
	"github.com/doctorsportal/portal/internal/platform/store"
)

type bookingDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	AppointName     string             `bson:"appointName"`
	AppointmentDate string             `bson:"appointmentDate"`
	PatientName     string             `bson:"patientName"`
	PatientIdentify string             `bson:"patientIdentify,omitempty"`
	Slot            string             `bson:"slot"`
	Price           float64            `bson:"price,omitempty"`
	Phone           string             `bson:"phone,omitempty"`
	Paid            bool               `bson:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty"`
}

func (d *bookingDoc) toModel() *Booking {
	return &Booking{
		ID:              d.ID.Hex(),
		AppointName:     d.AppointName,
		AppointmentDate: d.AppointmentDate,
		PatientName:     d.PatientName,
		PatientIdentify: d.PatientIdentify,
		Slot:            d.Slot,
		Price:           d.Price,
		Phone:           d.Phone,
		Paid:            d.Paid,
		TransactionID:   d.TransactionID,
	}
}

type bookingRepoMongo struct{ coll *mongo.Collection }

func NewBookingRepoMongo(database *mongo.Database) BookingRepository {
	return &bookingRepoMongo{coll: database.Collection(db.CollectionBookings)}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

func (r *bookingRepoMongo) findOne(ctx context.Context, filter bson.D) (*Booking, error) {
	var doc bookingDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, store.Translate(err)
	}
	return doc.toModel(), nil
}

func (r *bookingRepoMongo) find(ctx context.Context, filter bson.D) ([]*Booking, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	items := make([]*Booking, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toModel())
	}
	return items, nil
}

func (r *bookingRepoMongo) FindByTriple(ctx context.Context, appointName, appointmentDate, patientName string) (*Booking, error) {
	return r.findOne(ctx, bson.D{
		{Key: "appointName", Value: appointName},
		{Key: "appointmentDate", Value: appointmentDate},
		{Key: "patientName", Value: patientName},
	})
}

func (r *bookingRepoMongo) Insert(ctx context.Context, b *Booking) (*store.InsertResult, error) {
	doc := bookingDoc{
		AppointName:     b.AppointName,
		AppointmentDate: b.AppointmentDate,
		PatientName:     b.PatientName,
		PatientIdentify: b.PatientIdentify,
		Slot:            b.Slot,
		Price:           b.Price,
		Phone:           b.Phone,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", store.Translate(err))
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	b.ID = oid.Hex()
	return &store.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (r *bookingRepoMongo) ListByDate(ctx context.Context, appointmentDate string) ([]*Booking, error) {
	return r.find(ctx, bson.D{{Key: "appointmentDate", Value: appointmentDate}})
}

func (r *bookingRepoMongo) ListByOwner(ctx context.Context, email string) ([]*Booking, error) {
	return r.find(ctx, bson.D{{Key: "patientIdentify", Value: email}})
}

func (r *bookingRepoMongo) GetByID(ctx context.Context, id string) (*Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *bookingRepoMongo) MarkPaid(ctx context.Context, id, transactionID string) (*store.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.D{
		{Key: "_id", Value: oid},
		{Key: "paid", Value: bson.D{{Key: "$ne", Value: true}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "paid", Value: true},
		{Key: "transactionId", Value: transactionID},
	}}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
