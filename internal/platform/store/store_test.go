package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"mongo", mongo.ErrNoDocuments},
		{"pgx", pgx.ErrNoRows},
		{"wrapped pgx", fmt.Errorf("get booking: %w", pgx.ErrNoRows)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.err); !errors.Is(got, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", got)
			}
		})
	}
}

func TestTranslate_PostgresUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if got := Translate(err); !errors.Is(got, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", got)
	}
}

func TestTranslate_MongoDuplicateKey(t *testing.T) {
	err := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	if got := Translate(err); !errors.Is(got, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", got)
	}
}

func TestTranslate_PassThrough(t *testing.T) {
	orig := errors.New("connection reset")
	if got := Translate(orig); got != orig {
		t.Errorf("expected original error, got %v", got)
	}
	if Translate(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestDriver_Valid(t *testing.T) {
	if !DriverMongo.Valid() || !DriverPostgres.Valid() {
		t.Error("expected built-in drivers to be valid")
	}
	if Driver("sqlite").Valid() {
		t.Error("expected sqlite to be invalid")
	}
}
