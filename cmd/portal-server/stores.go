package main

import (
	"context"
	"fmt"

	"github.com/doctorsportal/portal/internal/config"
	"github.com/doctorsportal/portal/internal/domain/billing"
	"github.com/doctorsportal/portal/internal/domain/booking"
	"github.com/doctorsportal/portal/internal/domain/catalog"
	"github.com/doctorsportal/portal/internal/domain/identity"
	"github.com/doctorsportal/portal/internal/domain/roster"
	"github.com/doctorsportal/portal/internal/platform/db"
	"github.com/doctorsportal/portal/internal/platform/store"
)

// repositories is the storage backend selected by STORE_DRIVER.
type repositories struct {
	appointments catalog.AppointmentTypeRepository
	bookings     booking.BookingRepository
	users        identity.UserRepository
	doctors      roster.DoctorRepository
	payments     billing.PaymentRepository
	health       db.HealthChecker
	close        func(ctx context.Context)
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Driver() {
	case store.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBSchema, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, err
		}
		return &repositories{
			appointments: catalog.NewAppointmentTypeRepoPG(pool),
			bookings:     booking.NewBookingRepoPG(pool),
			users:        identity.NewUserRepoPG(pool),
			doctors:      roster.NewDoctorRepoPG(pool),
			payments:     billing.NewPaymentRepoPG(pool),
			health:       db.PostgresHealth{Pool: pool},
			close:        func(context.Context) { pool.Close() },
		}, nil

	case store.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := db.EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &repositories{
			appointments: catalog.NewAppointmentTypeRepoMongo(database),
			bookings:     booking.NewBookingRepoMongo(database),
			users:        identity.NewUserRepoMongo(database),
			doctors:      roster.NewDoctorRepoMongo(database),
			payments:     billing.NewPaymentRepoMongo(database),
			health:       db.MongoHealth{Client: client},
			close:        func(ctx context.Context) { _ = client.Disconnect(ctx) },
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
