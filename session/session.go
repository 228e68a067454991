// Package session owns the current claimed identity. Signing in is an
// identity claim, not authentication: any non-empty name is accepted.
package session

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/storage"
)

// ErrEmptyName is returned when the sign-in name trims to nothing.
var ErrEmptyName = errors.New("session: name must not be empty")

// ErrInvalidRole is returned for a role outside customer/vendor/admin.
var ErrInvalidRole = errors.New("session: unknown role")

// Store holds the session (or none, for anonymous) and mirrors every change
// to storage so the identity survives a restart.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	log     *zap.Logger
	current *models.Session
}

// NewStore rehydrates the session from storage. A persisted entry with an
// empty name or unknown role counts as anonymous.
func NewStore(kv storage.KV, log *zap.Logger) *Store {
	s := &Store{kv: kv, log: log}
	sess := storage.Load[*models.Session](kv, log, storage.KeyUserSession, nil)
	if sess != nil && (strings.TrimSpace(sess.Name) == "" || !sess.Role.Valid()) {
		log.Warn("discarding invalid persisted session")
		sess = nil
	}
	s.current = sess
	return s
}

// Get returns a copy of the current session, or nil when anonymous.
func (s *Store) Get() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// SignIn replaces the current session unconditionally and persists it.
func (s *Store) SignIn(name string, role models.Role) (*models.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	sess := &models.Session{Name: name, Role: role}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	storage.Save(s.kv, s.log, storage.KeyUserSession, sess)

	cp := *sess
	return &cp, nil
}

// SignOut clears the session and removes the persisted entry.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.kv.Remove(storage.KeyUserSession); err != nil {
		s.log.Error("removing persisted session failed", zap.Error(err))
	}
}
