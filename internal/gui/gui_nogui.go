//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"motionplay/internal/bindings"
	"motionplay/internal/config"
	"motionplay/internal/sensitivity"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(_ *config.Config, _ *bindings.Store, _ *sensitivity.Store) error {
	fmt.Println("GUI is disabled in this build. Use the TUI or CLI instead.")
	return fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
