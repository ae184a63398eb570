package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mvkeep/mediavault/internal/common"
	"github.com/mvkeep/mediavault/internal/logging"
	"github.com/mvkeep/mediavault/internal/storage"
)

// DirectoryKey is the store key holding the serialized account list.
const DirectoryKey = "mediavault.users"

// Directory owns the account list persisted under DirectoryKey. Every
// mutation is a full load-modify-save of the list; within one process events
// are handled sequentially, so that read-modify-write is safe.
type Directory struct {
	store storage.Store
	log   logging.Logger
}

// NewDirectory binds a directory to the given store.
func NewDirectory(store storage.Store, log logging.Logger) *Directory {
	return &Directory{store: store, log: log.With("component", "users")}
}

// LoadAll returns every registered account. A missing or malformed directory
// reads as empty rather than failing.
func (d *Directory) LoadAll(ctx context.Context) ([]User, error) {
	raw, err := d.store.Get(ctx, DirectoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}
	if raw == "" {
		return []User{}, nil
	}

	var all []User
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		d.log.Warn(ctx, "user directory is corrupt, treating as empty", "error", err)
		return []User{}, nil
	}
	return all, nil
}

// SaveAll serializes and persists the full account list, replacing the
// previous contents.
func (d *Directory) SaveAll(ctx context.Context, all []User) error {
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal user directory: %w", err)
	}
	if err := d.store.Set(ctx, DirectoryKey, string(b)); err != nil {
		return fmt.Errorf("failed to save user directory: %w", err)
	}
	return nil
}

// Authenticate scans for an exact, case-sensitive match on both fields.
// A miss returns (nil, nil): deliberately low-information, so callers cannot
// tell which of the two fields was wrong.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (*User, error) {
	all, err := d.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Username == username && all[i].Password == password {
			return &all[i], nil
		}
	}
	return nil, nil
}

// FindByID resolves an account id, returning (nil, nil) when unknown.
func (d *Directory) FindByID(ctx context.Context, id string) (*User, error) {
	all, err := d.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Register appends a new account and persists the directory. Usernames are
// unique (case-sensitive); a clash returns common.ErrDuplicateUsername.
func (d *Directory) Register(ctx context.Context, username, password string) (*User, error) {
	all, err := d.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Username == username {
			return nil, common.ErrDuplicateUsername
		}
	}

	u := User{ID: newID(), Username: username, Password: password}
	all = append(all, u)
	if err := d.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	d.log.Info(ctx, "account registered", "username", username)
	return &u, nil
}

// ResetPassword verifies the current password for username and overwrites it
// with newPassword in place.
func (d *Directory) ResetPassword(ctx context.Context, username, currentPassword, newPassword string) error {
	all, err := d.LoadAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range all {
		if all[i].Username == username {
			idx = i
			break
		}
	}
	if idx == -1 {
		return common.ErrUserNotFound
	}
	if all[idx].Password != currentPassword {
		return common.ErrWrongPassword
	}

	all[idx].Password = newPassword
	if err := d.SaveAll(ctx, all); err != nil {
		return err
	}

	d.log.Info(ctx, "password reset", "username", username)
	return nil
}

// newID returns a fresh account id. UUIDv7 combines a millisecond timestamp
// with random bits; collisions are not checked (accepted risk).
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
