package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// specialKeyCodes maps bubbletea key names to the KeyboardEvent-style codes
// the detection backend understands.
var specialKeyCodes = map[string]string{
	" ":     "Space",
	"up":    "ArrowUp",
	"down":  "ArrowDown",
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	"enter": "Enter",
	"tab":   "Tab",
}

// keyCodeFor translates a terminal key press into an opaque key code, for
// the "press the key you want" half of a remap gesture. Keys that have no
// sensible code (esc, ctrl chords, function keys) return false.
func keyCodeFor(msg tea.KeyMsg) (string, bool) {
	name := msg.String()
	if code, ok := specialKeyCodes[name]; ok {
		return code, true
	}
	if len(name) != 1 {
		return "", false
	}
	r := rune(name[0])
	switch {
	case unicode.IsLetter(r):
		return "Key" + strings.ToUpper(name), true
	case unicode.IsDigit(r):
		return "Digit" + name, true
	}
	return "", false
}
