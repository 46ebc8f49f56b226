package bindings

import (
	"encoding/json"
	"fmt"

	"motionplay/internal/catalog"
	"motionplay/internal/log"
	"motionplay/internal/store"
)

// StorageKey is the KV key holding the persisted binding snapshot.
const StorageKey = "bindings"

// Store owns the movement to key-code mapping. At most one movement is
// bound to any given key code; assigning a key that another movement holds
// silently steals it (last writer wins). Mutations are written through to
// the KV store.
type Store struct {
	kv    store.KV
	bound map[string]string // movement id -> key code, absent when unmapped
	saved bool              // a persisted snapshot exists (loaded or written)
}

// New creates a binding store initialized from the persisted snapshot if
// one exists, else from the catalog defaults. Persistence problems fall
// back to defaults and are never fatal.
func New(kv store.KV) *Store {
	s := &Store{kv: kv, bound: catalog.DefaultBindings()}
	s.Load()
	return s
}

// Assign binds movementID to keyCode. If another movement currently holds
// keyCode, that movement's binding is cleared first so the one-key-per-
// movement invariant is never violated. Re-assigning a movement or a key is
// normal, not an error.
func (s *Store) Assign(movementID, keyCode string) error {
	if _, ok := catalog.ByID(movementID); !ok {
		return fmt.Errorf("bindings: unknown movement %q", movementID)
	}
	if keyCode == "" {
		return fmt.Errorf("bindings: empty key code for %q", movementID)
	}

	if holder, ok := s.Resolve(keyCode); ok && holder != movementID {
		delete(s.bound, holder)
		log.Debugf("bindings: %s took %s from %s", movementID, keyCode, holder)
	}
	s.bound[movementID] = keyCode
	s.persist()
	return nil
}

// Clear unbinds movementID. Idempotent.
func (s *Store) Clear(movementID string) {
	if _, ok := s.bound[movementID]; !ok {
		return
	}
	delete(s.bound, movementID)
	s.persist()
}

// Resolve returns the movement currently bound to keyCode, if any. By the
// exclusivity invariant at most one movement can match.
func (s *Store) Resolve(keyCode string) (string, bool) {
	if keyCode == "" {
		return "", false
	}
	for _, m := range catalog.Movements() {
		if s.bound[m.ID] == keyCode {
			return m.ID, true
		}
	}
	return "", false
}

// KeyFor returns the key code bound to movementID, if any.
func (s *Store) KeyFor(movementID string) (string, bool) {
	code, ok := s.bound[movementID]
	return code, ok
}

// Snapshot returns the full mapping in wire shape: every catalog movement
// present, nil for unmapped.
func (s *Store) Snapshot() map[string]*string {
	snap := make(map[string]*string, len(catalog.Movements()))
	for _, m := range catalog.Movements() {
		if code, ok := s.bound[m.ID]; ok {
			c := code
			snap[m.ID] = &c
		} else {
			snap[m.ID] = nil
		}
	}
	return snap
}

// HasSaved reports whether a persisted snapshot exists, either loaded at
// startup or written since.
func (s *Store) HasSaved() bool {
	return s.saved
}

// Load replaces the mapping with the persisted snapshot. A missing or
// unparsable snapshot falls back to the catalog defaults.
func (s *Store) Load() {
	s.bound = catalog.DefaultBindings()
	s.saved = false

	val, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		log.Warnf("bindings: load failed, using defaults: %v", err)
		return
	}
	if !ok {
		return
	}

	var snap map[string]*string
	if err := json.Unmarshal(val, &snap); err != nil {
		log.Warnf("bindings: discarding unparsable snapshot: %v", err)
		return
	}

	restored := make(map[string]string, len(snap))
	taken := make(map[string]bool, len(snap))
	// Catalog order so duplicate key codes resolve deterministically:
	// the first movement keeps the key, later ones are dropped.
	for _, m := range catalog.Movements() {
		code, present := snap[m.ID]
		if !present || code == nil || *code == "" {
			continue
		}
		if taken[*code] {
			log.Warnf("bindings: snapshot bound %s twice, dropping %s", *code, m.ID)
			continue
		}
		restored[m.ID] = *code
		taken[*code] = true
	}
	s.bound = restored
	s.saved = true
}

// Save writes the current mapping to the KV store.
func (s *Store) Save() error {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("bindings: marshal snapshot: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		return err
	}
	s.saved = true
	return nil
}

// ResetToDefault overwrites the entire mapping with the catalog default
// and persists it.
func (s *Store) ResetToDefault() {
	s.bound = catalog.DefaultBindings()
	s.persist()
}

// Forget removes the persisted snapshot entirely and reverts to defaults.
// Afterwards the store reports no saved configuration, so the bridge sends
// null until the next mutation.
func (s *Store) Forget() error {
	if err := s.kv.Remove(StorageKey); err != nil {
		return err
	}
	s.bound = catalog.DefaultBindings()
	s.saved = false
	return nil
}

// persist is the write-through after a mutation. Failures are logged, not
// propagated; a missed write degrades to stale disk state, never a broken
// in-memory mapping.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		log.Warnf("bindings: persist failed: %v", err)
	}
}
