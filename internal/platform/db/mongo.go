package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the mongo repositories.
const (
	CollectionAppointments = "appointments"
	CollectionBookings     = "bookings"
	CollectionUsers        = "users"
	CollectionDoctors      = "doctors"
	CollectionPayments     = "payments"
)

// ConnectMongo dials uri and pings the primary before returning the client.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureMongoIndexes creates the unique indexes the repositories rely on:
// one booking per (appointName, appointmentDate, patientName), one user per
// email and one appointment type per name.
func EnsureMongoIndexes(ctx context.Context, database *mongo.Database) error {
	appointmentIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("appointment_name"),
	}
	if _, err := database.Collection(CollectionAppointments).Indexes().CreateOne(ctx, appointmentIdx); err != nil {
		return fmt.Errorf("create appointment index: %w", err)
	}

	bookingIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "appointName", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "patientName", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("booking_triple"),
	}
	if _, err := database.Collection(CollectionBookings).Indexes().CreateOne(ctx, bookingIdx); err != nil {
		return fmt.Errorf("create booking index: %w", err)
	}

	dateIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "appointmentDate", Value: 1}},
		Options: options.Index().SetName("booking_date"),
	}
	if _, err := database.Collection(CollectionBookings).Indexes().CreateOne(ctx, dateIdx); err != nil {
		return fmt.Errorf("create booking date index: %w", err)
	}

	userIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_email"),
	}
	if _, err := database.Collection(CollectionUsers).Indexes().CreateOne(ctx, userIdx); err != nil {
		return fmt.Errorf("create user index: %w", err)
	}
	return nil
}

// MongoHealth pings the primary of the wrapped client.
type MongoHealth struct {
	Client *mongo.Client
}

func (h MongoHealth) Driver() string { return "mongo" }

func (h MongoHealth) Ping(ctx context.Context) error { return h.Client.Ping(ctx, readpref.Primary()) }

func (h MongoHealth) Stats() interface{} {
	return map[string]int{"sessions_in_progress": h.Client.NumberSessionsInProgress()}
}
