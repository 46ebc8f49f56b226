package drag_test

import (
	"testing"

	"motionplay/internal/bindings"
	"motionplay/internal/drag"
	"motionplay/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*drag.Controller, *bindings.Store) {
	t.Helper()
	b := bindings.New(store.NewMemory())
	return drag.New(b), b
}

func TestDropAssignsDraggedMovement(t *testing.T) {
	c, b := newController(t)

	c.BeginDrag("jump")
	require.NoError(t, c.Drop("KeyW"))

	key, ok := b.KeyFor("jump")
	require.True(t, ok)
	assert.Equal(t, "KeyW", key)

	_, dragging := c.Dragging()
	assert.False(t, dragging, "drop must end the session")
}

func TestLastBeginWins(t *testing.T) {
	c, b := newController(t)

	c.BeginDrag("jump")
	c.BeginDrag("squat")
	require.NoError(t, c.Drop("KeyS"))

	holder, ok := b.Resolve("KeyS")
	require.True(t, ok)
	assert.Equal(t, "squat", holder)

	// jump keeps its original binding.
	key, ok := b.KeyFor("jump")
	require.True(t, ok)
	assert.Equal(t, "Space", key)
}

func TestStrayDropIsNoOp(t *testing.T) {
	c, b := newController(t)
	before := b.Snapshot()

	require.NoError(t, c.Drop("KeyW"))
	assert.Equal(t, before, b.Snapshot())
}

func TestEndDragCancelsWithoutAssignment(t *testing.T) {
	c, b := newController(t)
	before := b.Snapshot()

	c.BeginDrag("moveLeft")
	c.EndDrag()
	require.NoError(t, c.Drop("KeyD"), "drop after cancel is a stray drop")

	assert.Equal(t, before, b.Snapshot())
	_, dragging := c.Dragging()
	assert.False(t, dragging)
}

func TestOneAssignmentPerSession(t *testing.T) {
	c, b := newController(t)

	c.BeginDrag("moveRight")
	require.NoError(t, c.Drop("KeyD"))
	require.NoError(t, c.Drop("KeyA"), "second drop has no session to act on")

	key, ok := b.KeyFor("moveRight")
	require.True(t, ok)
	assert.Equal(t, "KeyD", key)

	_, ok = b.Resolve("KeyA")
	assert.False(t, ok)
}

func TestUnknownMovementIgnored(t *testing.T) {
	c, b := newController(t)
	before := b.Snapshot()

	c.BeginDrag("backflip")
	_, dragging := c.Dragging()
	assert.False(t, dragging)

	require.NoError(t, c.Drop("KeyW"))
	assert.Equal(t, before, b.Snapshot())
}
