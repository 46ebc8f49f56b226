package catalog_test

import (
	"testing"

	"motionplay/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementsFixedSet(t *testing.T) {
	movements := catalog.Movements()
	require.Len(t, movements, 4)

	ids := make([]string, 0, len(movements))
	for _, m := range movements {
		ids = append(ids, m.ID)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Icon)
	}
	assert.Equal(t, []string{"jump", "squat", "moveLeft", "moveRight"}, ids)
}

func TestByID(t *testing.T) {
	m, ok := catalog.ByID("squat")
	require.True(t, ok)
	assert.Equal(t, "Squat", m.Name)

	_, ok = catalog.ByID("backflip")
	assert.False(t, ok)
}

func TestDefaultBindingsCoverCatalog(t *testing.T) {
	defaults := catalog.DefaultBindings()
	for _, m := range catalog.Movements() {
		assert.Contains(t, defaults, m.ID, "every movement should ship with a default key")
	}
	assert.Equal(t, "Space", defaults["jump"])
	assert.Equal(t, "ArrowDown", defaults["squat"])
}

func TestKeyLabelFallback(t *testing.T) {
	assert.Equal(t, "↑", catalog.KeyLabel("ArrowUp"))
	// Unregistered codes come back verbatim.
	assert.Equal(t, "NumpadAdd", catalog.KeyLabel("NumpadAdd"))
}
