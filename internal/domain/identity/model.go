package identity

import "github.com/doctorsportal/portal/internal/platform/store"

// Role is either unset or admin.
type Role string

const (
	RoleNone  Role = ""
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleNone || r == RoleAdmin
}

// User is keyed by email. Role is only ever written by PromoteAdmin.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Photo string `json:"photo,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// ProfileUpdate carries the profile fields a user may set on themselves.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	Photo *string `json:"photo" validate:"omitempty,max=2048"`
}

// UpsertResult pairs the store acknowledgement with a fresh credential.
type UpsertResult struct {
	Result *store.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}
