package catalog

// Movement is one physical gesture the detection backend can recognize.
// The set of movements is fixed at build time; instances are never created
// or destroyed at runtime.
type Movement struct {
	ID          string // stable identity, matches the backend's movement names
	Name        string // human-readable label
	Icon        string // display glyph
	Description string
}

// Movements returns the fixed movement catalog, in display order.
func Movements() []Movement {
	return []Movement{
		{
			ID:          "jump",
			Name:        "Jump",
			Icon:        "🦘",
			Description: "Jump in place to trigger",
		},
		{
			ID:          "squat",
			Name:        "Squat",
			Icon:        "🧎",
			Description: "Crouch down to trigger",
		},
		{
			ID:          "moveLeft",
			Name:        "Lean Left",
			Icon:        "👈",
			Description: "Lean your shoulders to the left",
		},
		{
			ID:          "moveRight",
			Name:        "Lean Right",
			Icon:        "👉",
			Description: "Lean your shoulders to the right",
		},
	}
}

// ByID looks up a movement in the catalog.
func ByID(id string) (Movement, bool) {
	for _, m := range Movements() {
		if m.ID == id {
			return m, true
		}
	}
	return Movement{}, false
}

// DefaultBindings returns the out-of-the-box movement to key-code mapping.
func DefaultBindings() map[string]string {
	return map[string]string{
		"jump":      "Space",
		"squat":     "ArrowDown",
		"moveLeft":  "ArrowLeft",
		"moveRight": "ArrowRight",
	}
}

// keyLabels maps key codes to short display labels for UI rendering.
// Codes follow the browser KeyboardEvent.code vocabulary the backend
// understands (Space, ArrowUp, KeyW, ...).
var keyLabels = map[string]string{
	"Space":      "␣ Space",
	"ArrowUp":    "↑",
	"ArrowDown":  "↓",
	"ArrowLeft":  "←",
	"ArrowRight": "→",
	"KeyW":       "W",
	"KeyA":       "A",
	"KeyS":       "S",
	"KeyD":       "D",
	"ShiftLeft":  "⇧ Shift",
	"Enter":      "⏎ Enter",
}

// KeyLabel returns the display label for a key code, or the raw code when
// no label is registered.
func KeyLabel(code string) string {
	if label, ok := keyLabels[code]; ok {
		return label
	}
	return code
}
