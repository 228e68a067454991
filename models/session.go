package models

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// Session is the current claimed identity. Any name is accepted at sign-in;
// there is no credential behind it.
type Session struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
