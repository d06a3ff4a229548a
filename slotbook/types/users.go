package types

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RegisterUserRequest registers a caller-side user with the platform.
// Registering an external ID that already exists returns the existing mapping.
type RegisterUserRequest struct {
	ExternalID string              `json:"external_id"`
	Email      openapi_types.Email `json:"email"`
	FirstName  string              `json:"first_name,omitempty"`
	LastName   string              `json:"last_name,omitempty"`
}

// Validate returns per-field problems the server would reject, or nil.
func (r *RegisterUserRequest) Validate() map[string][]string {
	if _, err := r.Email.MarshalJSON(); err != nil {
		return map[string][]string{"email": {"Enter a valid email address."}}
	}
	return nil
}

// UserMapping links an external user ID to a platform user.
type UserMapping struct {
	ID         int       `json:"id"`
	ExternalID string    `json:"external_id"`
	UserID     int       `json:"user_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (u *UserMapping) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
