package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/storage"
)

func TestSignInTrimsAndPersists(t *testing.T) {
	kv := storage.NewMemory()
	s := NewStore(kv, zap.NewNop())

	assert.Nil(t, s.Get())

	sess, err := s.SignIn("  Ayesha Khan  ", models.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha Khan", sess.Name)
	assert.Equal(t, models.RoleVendor, sess.Role)

	// a fresh store over the same storage sees the same identity
	restarted := NewStore(kv, zap.NewNop())
	got := restarted.Get()
	require.NotNil(t, got)
	assert.Equal(t, *sess, *got)
}

func TestSignInValidation(t *testing.T) {
	s := NewStore(storage.NewMemory(), zap.NewNop())

	_, err := s.SignIn("   ", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Nil(t, s.Get())

	_, err = s.SignIn("Ali", models.Role("driver"))
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Nil(t, s.Get())
}

func TestSignInReplacesCurrentSession(t *testing.T) {
	s := NewStore(storage.NewMemory(), zap.NewNop())

	_, err := s.SignIn("Ali", models.RoleCustomer)
	require.NoError(t, err)
	_, err = s.SignIn("Sara", models.RoleAdmin)
	require.NoError(t, err)

	got := s.Get()
	require.NotNil(t, got)
	assert.Equal(t, models.Session{Name: "Sara", Role: models.RoleAdmin}, *got)
}

func TestSignOutRemovesPersistedEntry(t *testing.T) {
	kv := storage.NewMemory()
	s := NewStore(kv, zap.NewNop())

	_, err := s.SignIn("Ali", models.RoleCustomer)
	require.NoError(t, err)

	s.SignOut()
	assert.Nil(t, s.Get())

	_, err = kv.Get(storage.KeyUserSession)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	restarted := NewStore(kv, zap.NewNop())
	assert.Nil(t, restarted.Get())
}

func TestNewStoreDiscardsCorruptSession(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(storage.KeyUserSession, []byte(`{"name":"","role":"ghost"}`)))

	s := NewStore(kv, zap.NewNop())
	assert.Nil(t, s.Get())
}
