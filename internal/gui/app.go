//go:build !nogui
// +build !nogui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"motionplay/internal/bindings"
	"motionplay/internal/bridge"
	"motionplay/internal/config"
	"motionplay/internal/drag"
	"motionplay/internal/sensitivity"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	bindings *bindings.Store
	tuning   *sensitivity.Store
	dragCtl  *drag.Controller
	client   *bridge.Client

	// Bridge bar widgets, updated from bridge callbacks
	statusLabel  *widget.Label
	bridgeButton *widget.Button

	// Key drop targets for drag hit testing
	keyTargets []*keyTarget

	// Refreshes the binding labels after any mutation
	refreshMapping func()
}

// NewApp creates a new GUI application. A nil dial uses the real websocket
// transport; tests inject a fake.
func NewApp(cfg *config.Config, b *bindings.Store, s *sensitivity.Store, dial bridge.Dialer) *App {
	fyneApp := app.NewWithID("io.github.motionplay")

	a := &App{
		fyneApp:  fyneApp,
		cfg:      cfg,
		bindings: b,
		tuning:   s,
		dragCtl:  drag.New(b),
	}

	a.client = bridge.New(bridge.Config{
		Endpoint:    cfg.Bridge.Endpoint,
		Bindings:    b,
		Sensitivity: s,
		Dial:        dial,
		Notify:      a.onBridgeEvent,
	})

	a.mainWindow = a.fyneApp.NewWindow("MotionPlay")
	a.mainWindow.Resize(fyne.NewSize(640, 480))
	a.mainWindow.SetContent(a.buildContent())
	a.mainWindow.SetOnClosed(func() {
		a.client.Stop()
	})

	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the main window and enters the event loop.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

func (a *App) buildContent() fyne.CanvasObject {
	tabs := container.NewAppTabs(
		container.NewTabItem("Mapping", a.createMappingTab()),
		container.NewTabItem("Sensitivity", a.createSensitivityTab()),
	)
	return container.NewBorder(nil, a.createBridgeBar(), nil, nil, tabs)
}

// createBridgeBar builds the start/stop control and the connection status
// readout. Both render the client's state; there is no separate running
// flag to fall out of sync.
func (a *App) createBridgeBar() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel("Disconnected")
	a.bridgeButton = widget.NewButton("Start", func() {
		switch a.client.State() {
		case bridge.Disconnected:
			a.client.Start()
		default:
			a.client.Stop()
		}
	})
	return container.NewHBox(a.bridgeButton, a.statusLabel)
}

func (a *App) onBridgeEvent(ev bridge.Event) {
	switch ev.State {
	case bridge.Connecting:
		a.statusLabel.SetText("Connecting…")
		a.bridgeButton.SetText("Cancel")
	case bridge.Connected:
		a.statusLabel.SetText("Connected")
		a.bridgeButton.SetText("Stop")
	default:
		if ev.Err != nil {
			a.statusLabel.SetText("Could not connect. Is the detection process running?")
		} else {
			a.statusLabel.SetText("Disconnected")
		}
		a.bridgeButton.SetText("Start")
	}
}

// StartGUI launches the graphical interface.
func StartGUI(cfg *config.Config, b *bindings.Store, s *sensitivity.Store) error {
	NewApp(cfg, b, s, nil).Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
