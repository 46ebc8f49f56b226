package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the persistence contract used by the binding and sensitivity
// stores. Values are opaque serialized snapshots; the KV layer never
// inspects them.
type KV interface {
	// Get returns the stored value for key. The second return is false
	// when no value has ever been stored under key.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Disk is a KV backed by one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// NewDisk opens (creating if needed) a disk-backed KV rooted at basePath.
func NewDisk(basePath string) (*Disk, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 64 * 1024,
		}),
		basePath: basePath,
	}, nil
}

// BasePath returns the directory holding the stored values.
func (s *Disk) BasePath() string {
	return s.basePath
}

func (s *Disk) Get(key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %q: %w", key, err)
	}
	return val, true, nil
}

func (s *Disk) Set(key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

func (s *Disk) Remove(key string) error {
	err := s.d.Erase(key)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: erase %q: %w", key, err)
	}
	return nil
}

// DefaultBasePath returns the per-user data directory for stored snapshots.
func DefaultBasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "motionplay"), nil
}

// Memory is an in-process KV used by tests and as the load fallback when
// the data directory is unavailable.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
