package vault

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mvkeep/mediavault/internal/common"
	"github.com/mvkeep/mediavault/internal/logging"
	"github.com/mvkeep/mediavault/internal/session"
	"github.com/mvkeep/mediavault/internal/storage"
)

// MediaKeyPrefix namespaces each user's collection; the owning user's id is
// appended, which is what keeps collections isolated per account.
const MediaKeyPrefix = "mediavault.media."

// Vault exposes the media collection of whichever user is currently
// authenticated. Every operation resolves the session first and fails with
// common.ErrNoUser while Anonymous.
//
// Collections are loaded fresh on every read and rewritten in full on every
// mutation. There is no cross-process locking: two processes sharing one
// store can interleave load-modify-save cycles (accepted limitation).
type Vault struct {
	store    storage.Store
	sessions *session.Manager
	log      logging.Logger
}

// New binds a vault to the store and session manager.
func New(store storage.Store, sessions *session.Manager, log logging.Logger) *Vault {
	return &Vault{store: store, sessions: sessions, log: log.With("component", "vault")}
}

// Key returns the store key for userID's collection.
func Key(userID string) string { return MediaKeyPrefix + userID }

// List returns the current user's records in insertion order. An absent or
// malformed collection reads as empty.
func (v *Vault) List(ctx context.Context) ([]Media, error) {
	key, err := v.currentKey()
	if err != nil {
		return nil, err
	}
	return v.load(ctx, key)
}

// Add appends records to the stored collection in a single persist.
func (v *Vault) Add(ctx context.Context, records []Media) error {
	key, err := v.currentKey()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	stored, err := v.load(ctx, key)
	if err != nil {
		return err
	}
	stored = append(stored, records...)
	if err := v.save(ctx, key, stored); err != nil {
		return err
	}

	v.log.Info(ctx, "media added", "count", len(records), "total", len(stored))
	return nil
}

// DeleteAt removes the record at index and persists the rest.
//
// The index is positional, not a stable identifier: if another writer changed
// the collection since it was listed, the wrong record may be removed.
func (v *Vault) DeleteAt(ctx context.Context, index int) error {
	key, err := v.currentKey()
	if err != nil {
		return err
	}

	stored, err := v.load(ctx, key)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(stored) {
		return fmt.Errorf("%w: %d", common.ErrIndexOutOfRange, index)
	}

	name := stored[index].Name
	stored = append(stored[:index], stored[index+1:]...)
	if err := v.save(ctx, key, stored); err != nil {
		return err
	}

	v.log.Info(ctx, "media deleted", "name", name, "index", index)
	return nil
}

// Clear removes the user's entire collection key.
func (v *Vault) Clear(ctx context.Context) error {
	key, err := v.currentKey()
	if err != nil {
		return err
	}
	if err := v.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear media collection: %w", err)
	}
	v.log.Info(ctx, "media collection cleared")
	return nil
}

func (v *Vault) currentKey() (string, error) {
	u, ok := v.sessions.Current()
	if !ok {
		return "", common.ErrNoUser
	}
	return Key(u.ID), nil
}

func (v *Vault) load(ctx context.Context, key string) ([]Media, error) {
	raw, err := v.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load media collection: %w", err)
	}
	if raw == "" {
		return []Media{}, nil
	}

	var records []Media
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		v.log.Warn(ctx, "media collection is corrupt, treating as empty", "error", err)
		return []Media{}, nil
	}
	return records, nil
}

func (v *Vault) save(ctx context.Context, key string, records []Media) error {
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal media collection: %w", err)
	}
	if err := v.store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("failed to save media collection: %w", err)
	}
	return nil
}
