package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/doctorsportal/portal/internal/platform/db/dbtest"
	"github.com/doctorsportal/portal/internal/platform/store"
)

func TestUserRepoPG(t *testing.T) {
	repo := NewUserRepoPG(dbtest.NewPool(t))
	ctx := context.Background()

	t.Run("UpsertProfile inserts then updates", func(t *testing.T) {
		res, err := repo.UpsertProfile(ctx, "alice@example.com", ProfileUpdate{Name: strPtr("Alice"), Phone: strPtr("555")})
		if err != nil {
			t.Fatalf("UpsertProfile() error: %v", err)
		}
		if res.UpsertedCount != 1 || res.MatchedCount != 0 || res.UpsertedID == "" {
			t.Errorf("expected insert, got %+v", res)
		}

		res, err = repo.UpsertProfile(ctx, "alice@example.com", ProfileUpdate{Photo: strPtr("https://img/alice.png")})
		if err != nil {
			t.Fatalf("UpsertProfile() error: %v", err)
		}
		if res.UpsertedCount != 0 || res.MatchedCount != 1 {
			t.Errorf("expected update, got %+v", res)
		}

		u, err := repo.GetByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetByEmail() error: %v", err)
		}
		if u.Name != "Alice" || u.Phone != "555" || u.Photo != "https://img/alice.png" {
			t.Errorf("expected omitted fields to be kept, got %+v", u)
		}
		if u.Role != RoleNone {
			t.Errorf("expected no role, got %q", u.Role)
		}
	})

	t.Run("SetRole unknown email", func(t *testing.T) {
		res, err := repo.SetRole(ctx, "ghost@example.com", RoleAdmin)
		if err != nil {
			t.Fatalf("SetRole() error: %v", err)
		}
		if res.MatchedCount != 0 {
			t.Errorf("expected no match, got %d", res.MatchedCount)
		}
		if _, err := repo.GetByEmail(ctx, "ghost@example.com"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("expected promotion not to create a user, got %v", err)
		}
	})

	t.Run("SetRole promote and clear", func(t *testing.T) {
		res, err := repo.SetRole(ctx, "alice@example.com", RoleAdmin)
		if err != nil {
			t.Fatalf("SetRole() error: %v", err)
		}
		if res.MatchedCount != 1 {
			t.Errorf("expected one match, got %d", res.MatchedCount)
		}
		if u, _ := repo.GetByEmail(ctx, "alice@example.com"); u == nil || u.Role != RoleAdmin {
			t.Errorf("expected admin, got %+v", u)
		}

		if _, err := repo.SetRole(ctx, "alice@example.com", RoleNone); err != nil {
			t.Fatalf("SetRole() error: %v", err)
		}
		if u, _ := repo.GetByEmail(ctx, "alice@example.com"); u == nil || u.Role != RoleNone {
			t.Errorf("expected role cleared, got %+v", u)
		}
	})

	t.Run("List and DeleteByEmail", func(t *testing.T) {
		if _, err := repo.UpsertProfile(ctx, "bob@example.com", ProfileUpdate{}); err != nil {
			t.Fatalf("UpsertProfile() error: %v", err)
		}
		users, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("expected 2 users, got %d", len(users))
		}

		res, err := repo.DeleteByEmail(ctx, "bob@example.com")
		if err != nil {
			t.Fatalf("DeleteByEmail() error: %v", err)
		}
		if res.DeletedCount != 1 {
			t.Errorf("expected 1 deleted, got %d", res.DeletedCount)
		}
		res, err = repo.DeleteByEmail(ctx, "bob@example.com")
		if err != nil {
			t.Fatalf("DeleteByEmail() error: %v", err)
		}
		if res.DeletedCount != 0 {
			t.Errorf("expected 0 deleted, got %d", res.DeletedCount)
		}
	})
}
