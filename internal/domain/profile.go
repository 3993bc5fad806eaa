package domain

import "time"

type Role string

const (
	RoleTenant          Role = "tenant"
	RolePropertyManager Role = "property_manager"
	RoleCaretaker       Role = "caretaker"
	RoleAdmin           Role = "admin"
	RoleUnset           Role = ""
)

// Valid reports whether r is one of the assignable roles. The empty
// role is not assignable; it only exists as the pre-assignment state.
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RolePropertyManager, RoleCaretaker, RoleAdmin:
		return true
	}
	return false
}

// Normalize coerces a missing role to tenant for authorization purposes.
func (r Role) Normalize() Role {
	if r == RoleUnset {
		return RoleTenant
	}
	return r
}

// Profile mirrors a row in the profiles table. The ID is the subject
// of the bearer token issued by the identity provider.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
