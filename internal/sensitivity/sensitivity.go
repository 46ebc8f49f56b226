package sensitivity

import (
	"encoding/json"
	"errors"
	"fmt"

	"motionplay/internal/log"
	"motionplay/internal/store"
)

// StorageKey is the KV key holding the persisted sensitivity snapshot.
const StorageKey = "sensitivity"

// ErrOutOfRange is returned by Set when a value falls outside the
// parameter's declared range. The prior value is retained.
var ErrOutOfRange = errors.New("sensitivity: value out of range")

// Parameter declares one tunable detection parameter: its valid range,
// adjustment step, and default. The catalog below is the single source of
// truth; no call site hard-codes ranges.
type Parameter struct {
	Name        string
	Description string
	Default     float64
	Min         float64
	Max         float64
	Step        float64
}

// Parameters returns the fixed tuning catalog, in display order. Threshold
// defaults match the detection backend's calibrated values; the timing
// parameters mirror its key tap hold and trigger cooldown.
func Parameters() []Parameter {
	return []Parameter{
		{
			Name:        "jumpThreshold",
			Description: "How far the hips must rise to count as a jump",
			Default:     0.10, Min: 0.02, Max: 0.30, Step: 0.01,
		},
		{
			Name:        "squatThreshold",
			Description: "How far the hips must drop to count as a squat",
			Default:     0.10, Min: 0.02, Max: 0.30, Step: 0.01,
		},
		{
			Name:        "sideThreshold",
			Description: "How far the shoulders must shift to count as a lean",
			Default:     0.08, Min: 0.02, Max: 0.25, Step: 0.01,
		},
		{
			Name:        "holdDelaySeconds",
			Description: "How long a triggered key is held down",
			Default:     0.05, Min: 0.0, Max: 0.5, Step: 0.05,
		},
		{
			Name:        "repeatIntervalSeconds",
			Description: "Minimum time between repeated triggers of one movement",
			Default:     0.50, Min: 0.10, Max: 2.0, Step: 0.10,
		},
	}
}

// ParameterByName looks up a parameter declaration.
func ParameterByName(name string) (Parameter, bool) {
	for _, p := range Parameters() {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Store owns the current sensitivity values. Every stored value lies within
// its parameter's declared range. Mutations are written through to the KV
// store.
type Store struct {
	kv     store.KV
	values map[string]float64
	saved  bool
}

// New creates a sensitivity store initialized from the persisted snapshot
// if one exists, else from the catalog defaults.
func New(kv store.KV) *Store {
	s := &Store{kv: kv, values: defaults()}
	s.Load()
	return s
}

func defaults() map[string]float64 {
	vals := make(map[string]float64, len(Parameters()))
	for _, p := range Parameters() {
		vals[p.Name] = p.Default
	}
	return vals
}

// Get returns the current value of the named parameter.
func (s *Store) Get(name string) (float64, error) {
	val, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("sensitivity: unknown parameter %q", name)
	}
	return val, nil
}

// Set replaces the named parameter's value and persists. Values outside
// the declared [min, max] range are rejected with ErrOutOfRange and the
// prior value is retained.
func (s *Store) Set(name string, value float64) error {
	p, ok := ParameterByName(name)
	if !ok {
		return fmt.Errorf("sensitivity: unknown parameter %q", name)
	}
	if value < p.Min || value > p.Max {
		return fmt.Errorf("%w: %s=%.3f (valid %.2f..%.2f)",
			ErrOutOfRange, name, value, p.Min, p.Max)
	}
	s.values[name] = value
	s.persist()
	return nil
}

// Snapshot returns the full current parameter values in wire shape.
func (s *Store) Snapshot() map[string]float64 {
	snap := make(map[string]float64, len(s.values))
	for name, val := range s.values {
		snap[name] = val
	}
	return snap
}

// HasSaved reports whether a persisted snapshot exists.
func (s *Store) HasSaved() bool {
	return s.saved
}

// Load replaces the values with the persisted snapshot. Missing or
// unparsable snapshots fall back to defaults; persisted values outside a
// parameter's range are dropped in favor of that parameter's default.
func (s *Store) Load() {
	s.values = defaults()
	s.saved = false

	val, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		log.Warnf("sensitivity: load failed, using defaults: %v", err)
		return
	}
	if !ok {
		return
	}

	var snap map[string]float64
	if err := json.Unmarshal(val, &snap); err != nil {
		log.Warnf("sensitivity: discarding unparsable snapshot: %v", err)
		return
	}

	for _, p := range Parameters() {
		stored, present := snap[p.Name]
		if !present {
			continue
		}
		if stored < p.Min || stored > p.Max {
			log.Warnf("sensitivity: persisted %s=%.3f out of range, keeping default", p.Name, stored)
			continue
		}
		s.values[p.Name] = stored
	}
	s.saved = true
}

// Save writes the current values to the KV store.
func (s *Store) Save() error {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("sensitivity: marshal snapshot: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		return err
	}
	s.saved = true
	return nil
}

// ResetToDefault restores every parameter to its default and persists.
func (s *Store) ResetToDefault() {
	s.values = defaults()
	s.persist()
}

// Forget removes the persisted snapshot entirely and reverts to defaults.
// Afterwards the store reports no saved configuration.
func (s *Store) Forget() error {
	if err := s.kv.Remove(StorageKey); err != nil {
		return err
	}
	s.values = defaults()
	s.saved = false
	return nil
}

func (s *Store) persist() {
	if err := s.Save(); err != nil {
		log.Warnf("sensitivity: persist failed: %v", err)
	}
}
