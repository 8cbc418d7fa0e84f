package entities

// Role classifies the actor behind a session.
type Role string

const (
	RoleTenant Role = "tenant"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one the portal knows.
func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleAdmin
}

// Identity is the actor behind the single active session. At most one
// Identity exists at a time; it is replaced by sign-in and cleared by
// sign-out.
type Identity struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Role     Role   `json:"role" db:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
