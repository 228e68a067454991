// Package nav decides whether a navigation request may proceed and remembers
// requests deferred pending sign-in. The gate is advisory and client-facing:
// it controls which view is rendered, nothing more.
package nav

import (
	"gikibites/models"
	"gikibites/session"
)

// Destination names an application view.
type Destination string

const (
	Home        Destination = "home"
	Menu        Destination = "menu"
	Cart        Destination = "cart"
	VendorHome  Destination = "vendor-home"
	VendorAdd   Destination = "vendor-add"
	VendorList  Destination = "vendor-list"
	VendorOrder Destination = "vendor-order"
	Admin       Destination = "admin"
)

var destinations = map[Destination]bool{
	Home: true, Menu: true, Cart: true,
	VendorHome: true, VendorAdd: true, VendorList: true, VendorOrder: true,
	Admin: true,
}

// roleRequirements maps gated destinations to the role that may enter them.
// Destinations absent from the table are open to everyone.
var roleRequirements = map[Destination]models.Role{
	VendorHome:  models.RoleVendor,
	VendorAdd:   models.RoleVendor,
	VendorList:  models.RoleVendor,
	VendorOrder: models.RoleVendor,
	Admin:       models.RoleAdmin,
}

// Known reports whether d belongs to the fixed destination set.
func Known(d Destination) bool { return destinations[d] }

// RequiredRole returns the role needed to enter d, if any.
func RequiredRole(d Destination) (models.Role, bool) {
	r, ok := roleRequirements[d]
	return r, ok
}

// Decision is the outcome of a navigation request. RequiredRole is set only
// when the request is denied.
type Decision struct {
	Allowed      bool
	RequiredRole models.Role
}

// Guard checks navigation requests against the current session.
type Guard struct {
	sessions *session.Store
}

func NewGuard(sessions *session.Store) *Guard {
	return &Guard{sessions: sessions}
}

// RequestNavigate allows an ungated destination unconditionally, allows a
// gated one when the session role matches, and denies everything else naming
// the required role.
func (g *Guard) RequestNavigate(d Destination) Decision {
	required, gated := RequiredRole(d)
	if !gated {
		return Decision{Allowed: true}
	}
	if sess := g.sessions.Get(); sess != nil && sess.Role == required {
		return Decision{Allowed: true}
	}
	return Decision{RequiredRole: required}
}
