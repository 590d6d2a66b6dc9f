package identity

import (
	"context"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type UserRepository interface {
	// UpsertProfile creates the user when email is unknown.
	UpsertProfile(ctx context.Context, email string, p ProfileUpdate) (*store.UpdateResult, error)
	// SetRole never creates a user; MatchedCount is 0 for unknown emails.
	SetRole(ctx context.Context, email string, role Role) (*store.UpdateResult, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error)
}

// TokenIssuer mints the session credential handed back on profile upsert.
type TokenIssuer interface {
	Issue(email string) (string, error)
}
