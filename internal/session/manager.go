// Package session tracks which account is currently authenticated and keeps
// that choice durable across restarts.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvkeep/mediavault/internal/common"
	"github.com/mvkeep/mediavault/internal/logging"
	"github.com/mvkeep/mediavault/internal/storage"
	"github.com/mvkeep/mediavault/internal/users"
)

// PointerKey is the store key holding the current user's id. The Manager is
// the sole writer of this key.
const PointerKey = "mediavault.current_user"

// MinPasswordLength is the floor enforced when resetting a password.
const MinPasswordLength = 6

// Manager is a two-state machine: Anonymous, or Authenticated with exactly
// one user. Entering Authenticated persists the user's id under PointerKey;
// entering Anonymous removes it.
type Manager struct {
	store   storage.Store
	dir     *users.Directory
	log     logging.Logger
	current *users.User
}

// NewManager restores the session from the store: a pointer that resolves to
// an existing user re-enters Authenticated; a stale pointer is cleared and
// the manager starts Anonymous.
func NewManager(ctx context.Context, store storage.Store, dir *users.Directory, log logging.Logger) (*Manager, error) {
	m := &Manager{store: store, dir: dir, log: log.With("component", "session")}

	id, err := store.Get(ctx, PointerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session pointer: %w", err)
	}
	if id == "" {
		return m, nil
	}

	u, err := dir.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		m.log.Warn(ctx, "session pointer references unknown user, clearing", "id", id)
		if err := store.Delete(ctx, PointerKey); err != nil {
			return nil, fmt.Errorf("failed to clear stale session pointer: %w", err)
		}
		return m, nil
	}

	m.current = u
	m.log.Info(ctx, "session restored", "username", u.Username)
	return m, nil
}

// Current returns the authenticated user, or false when Anonymous.
func (m *Manager) Current() (*users.User, bool) {
	return m.current, m.current != nil
}

// Login authenticates against the directory and enters Authenticated.
// A miss is reported as common.ErrInvalidCredentials without revealing which
// field was wrong.
func (m *Manager) Login(ctx context.Context, username, password string) (*users.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, common.ErrEmptyCredentials
	}

	u, err := m.dir.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := m.enter(ctx, u); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "logged in", "username", u.Username)
	return u, nil
}

// Register creates the account and logs it in in one step.
func (m *Manager) Register(ctx context.Context, username, password string) (*users.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, common.ErrEmptyCredentials
	}

	u, err := m.dir.Register(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := m.enter(ctx, u); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "registered and logged in", "username", u.Username)
	return u, nil
}

// Logout clears the persisted pointer and returns to Anonymous. Logging out
// while Anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if m.current == nil {
		return nil
	}
	if err := m.store.Delete(ctx, PointerKey); err != nil {
		return fmt.Errorf("failed to clear session pointer: %w", err)
	}
	m.log.Info(ctx, "logged out", "username", m.current.Username)
	m.current = nil
	return nil
}

// ResetPassword validates the reset form and delegates to the directory.
// It does not touch the session: the flow is available to anonymous users
// who can no longer log in.
func (m *Manager) ResetPassword(ctx context.Context, username, currentPassword, newPassword, confirmPassword string) error {
	username = strings.TrimSpace(username)
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if username == "" || currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return common.ErrFieldsRequired
	}
	if newPassword != confirmPassword {
		return common.ErrPasswordMismatch
	}
	if len(newPassword) < MinPasswordLength {
		return common.ErrPasswordTooShort
	}

	return m.dir.ResetPassword(ctx, username, currentPassword, newPassword)
}

func (m *Manager) enter(ctx context.Context, u *users.User) error {
	if err := m.store.Set(ctx, PointerKey, u.ID); err != nil {
		return fmt.Errorf("failed to persist session pointer: %w", err)
	}
	m.current = u
	return nil
}
