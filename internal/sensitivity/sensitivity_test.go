package sensitivity_test

import (
	"testing"

	"motionplay/internal/sensitivity"
	"motionplay/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := sensitivity.New(store.NewMemory())

	val, err := s.Get("jumpThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.10, val, 1e-9)

	val, err = s.Get("repeatIntervalSeconds")
	require.NoError(t, err)
	assert.InDelta(t, 0.50, val, 1e-9)

	assert.False(t, s.HasSaved())
}

func TestSetWithinRange(t *testing.T) {
	s := sensitivity.New(store.NewMemory())

	require.NoError(t, s.Set("sideThreshold", 0.12))
	val, err := s.Get("sideThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.12, val, 1e-9)
}

func TestSetOutOfRangeRetainsPriorValue(t *testing.T) {
	s := sensitivity.New(store.NewMemory())
	require.NoError(t, s.Set("jumpThreshold", 0.15))

	err := s.Set("jumpThreshold", 0.95)
	require.ErrorIs(t, err, sensitivity.ErrOutOfRange)

	val, err := s.Get("jumpThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.15, val, 1e-9, "rejected set must not change the value")
}

func TestRangeInvariantUnderSetSequences(t *testing.T) {
	s := sensitivity.New(store.NewMemory())

	attempts := []struct {
		name  string
		value float64
	}{
		{"jumpThreshold", 0.30},
		{"jumpThreshold", 0.31},
		{"squatThreshold", -0.5},
		{"squatThreshold", 0.02},
		{"holdDelaySeconds", 0.0},
		{"holdDelaySeconds", 1.0},
		{"repeatIntervalSeconds", 2.0},
		{"sideThreshold", 0.26},
	}
	for _, a := range attempts {
		s.Set(a.name, a.value) // errors expected for the invalid ones
	}

	for _, p := range sensitivity.Parameters() {
		val, err := s.Get(p.Name)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, val, p.Min, p.Name)
		assert.LessOrEqual(t, val, p.Max, p.Name)
	}
}

func TestUnknownParameter(t *testing.T) {
	s := sensitivity.New(store.NewMemory())

	assert.Error(t, s.Set("ghostThreshold", 0.1))
	_, err := s.Get("ghostThreshold")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	kv := store.NewMemory()
	s := sensitivity.New(kv)

	require.NoError(t, s.Set("jumpThreshold", 0.22))
	require.NoError(t, s.Set("holdDelaySeconds", 0.10))
	require.NoError(t, s.Save())

	fresh := sensitivity.New(kv)
	assert.Equal(t, s.Snapshot(), fresh.Snapshot())
	assert.True(t, fresh.HasSaved())
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(sensitivity.StorageKey, []byte("not-json")))

	s := sensitivity.New(kv)
	val, err := s.Get("squatThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.10, val, 1e-9)
	assert.False(t, s.HasSaved())
}

func TestOutOfRangePersistedValueDropped(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(sensitivity.StorageKey,
		[]byte(`{"jumpThreshold":9.0,"sideThreshold":0.2}`)))

	s := sensitivity.New(kv)

	val, err := s.Get("jumpThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.10, val, 1e-9, "out-of-range persisted value reverts to default")

	val, err = s.Get("sideThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.2, val, 1e-9)
}

func TestForgetRemovesSnapshot(t *testing.T) {
	kv := store.NewMemory()
	s := sensitivity.New(kv)
	require.NoError(t, s.Set("jumpThreshold", 0.2))
	require.True(t, s.HasSaved())

	require.NoError(t, s.Forget())

	assert.False(t, s.HasSaved())
	val, err := s.Get("jumpThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.10, val, 1e-9)
}

func TestResetToDefault(t *testing.T) {
	kv := store.NewMemory()
	s := sensitivity.New(kv)
	require.NoError(t, s.Set("sideThreshold", 0.2))

	s.ResetToDefault()

	fresh := sensitivity.New(kv)
	val, err := fresh.Get("sideThreshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.08, val, 1e-9)
}
