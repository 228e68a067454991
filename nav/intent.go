package nav

import (
	"sync"

	"gikibites/models"
)

// PendingIntent is a deferred navigation request plus the presentation hints
// for the sign-in prompt. Destination may be empty when the prompt was opened
// directly rather than by a denied navigation. RoleHint pre-selects the
// prompt's role choice; an empty AllowedRoles leaves the choice unrestricted.
type PendingIntent struct {
	Destination  Destination
	RoleHint     models.Role
	AllowedRoles []models.Role
}

// Resolution classifies what a sign-in did to the pending intent.
type Resolution int

const (
	// NoPendingIntent means the sign-in stood alone; nothing to resume.
	NoPendingIntent Resolution = iota
	// ResumeDestination means the deferred navigation should proceed.
	ResumeDestination
	// RoleMismatch means the signed-in role cannot enter the deferred
	// destination.
	RoleMismatch
)

// Tracker holds at most one pending intent; a new deferral replaces any
// previous one.
type Tracker struct {
	mu      sync.Mutex
	pending *PendingIntent
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Defer records a deferred navigation (or a bare prompt request when dest is
// empty), overwriting whatever was pending before.
func (t *Tracker) Defer(dest Destination, roleHint models.Role, allowedRoles ...models.Role) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = &PendingIntent{
		Destination:  dest,
		RoleHint:     roleHint,
		AllowedRoles: append([]models.Role(nil), allowedRoles...),
	}
}

// Pending returns a copy of the current pending intent, or nil.
func (t *Tracker) Pending() *PendingIntent {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		return nil
	}
	cp := *t.pending
	cp.AllowedRoles = append([]models.Role(nil), t.pending.AllowedRoles...)
	return &cp
}

// ResolveOnSignIn consumes the pending intent against a fresh session. The
// intent is cleared whatever the outcome: a role mismatch must never leave a
// stale deferral behind to auto-resume a later, unrelated sign-in. On
// ResumeDestination the destination to navigate to is returned; on
// RoleMismatch the role that would have been required.
func (t *Tracker) ResolveOnSignIn(sess *models.Session) (Resolution, Destination, models.Role) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.pending
	t.pending = nil

	if p == nil || p.Destination == "" {
		return NoPendingIntent, "", ""
	}

	required, gated := RequiredRole(p.Destination)
	if !gated || required == sess.Role {
		return ResumeDestination, p.Destination, ""
	}
	return RoleMismatch, "", required
}

// ClearOnSignOut drops any deferred navigation when the user signs out.
func (t *Tracker) ClearOnSignOut() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = nil
}
