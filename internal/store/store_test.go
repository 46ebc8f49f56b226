package store_test

import (
	"context"
	"testing"
	"time"

	"motionplay/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskRoundTrip(t *testing.T) {
	s, err := store.NewDisk(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get("bindings")
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should report absent values")

	require.NoError(t, s.Set("bindings", []byte(`{"jump":"Space"}`)))

	val, ok, err := s.Get("bindings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"jump":"Space"}`, string(val))
}

func TestDiskRemove(t *testing.T) {
	s, err := store.NewDisk(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("sensitivity", []byte(`{}`)))
	require.NoError(t, s.Remove("sensitivity"))

	_, ok, err := s.Get("sensitivity")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	assert.NoError(t, s.Remove("sensitivity"))
}

func TestDiskSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s1, err := store.NewDisk(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set("bindings", []byte(`{"squat":"KeyS"}`)))

	s2, err := store.NewDisk(dir)
	require.NoError(t, err)
	val, ok, err := s2.Get("bindings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"squat":"KeyS"}`, string(val))
}

func TestMemoryIsolation(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.Set("k", []byte("abc")))

	val, ok, err := m.Get("k")
	require.NoError(t, err)
	require.True(t, ok)

	// Mutating the returned slice must not corrupt the stored value.
	val[0] = 'z'
	again, _, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestWatchReportsChangedKey(t *testing.T) {
	s, err := store.NewDisk(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Set("bindings", []byte(`{}`)))

	// fsnotify delivery is asynchronous; give it a moment.
	select {
	case ev := <-events:
		assert.Equal(t, "bindings", ev.Key)
	case <-time.After(2 * time.Second):
		t.Fatal("no watch event received for written key")
	}
}
