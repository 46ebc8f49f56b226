package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"motionplay/internal/bindings"
	"motionplay/internal/bridge"
	"motionplay/internal/catalog"
	"motionplay/internal/drag"
	"motionplay/internal/sensitivity"
)

type view int

const (
	mappingView view = iota
	sensitivityView
)

// keyMap defines the bindings for the non-drag modes. While a remap is
// in progress raw key codes are consumed directly and this map is
// bypassed (any key may become a binding).
type keyMap struct {
	Quit   key.Binding
	Tab    key.Binding
	Up     key.Binding
	Down   key.Binding
	Bridge key.Binding
	Push   key.Binding
	Remap  key.Binding
	Clear  key.Binding
	Reset  key.Binding
	Lower  key.Binding
	Raise  key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Bridge: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bridge")),
		Push:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push")),
		Remap:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "remap")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Lower:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h", "decrease")),
		Raise:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l", "increase")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// BridgeEventMsg wraps a bridge state transition for the update loop.
type BridgeEventMsg bridge.Event

// StoresReloadedMsg signals that a persisted snapshot changed on disk
// (e.g. another motionplay process saved). The reload itself happens in
// Update so the stores are only ever touched from the update loop.
type StoresReloadedMsg struct {
	Key string
}

// Model is the terminal interface: a mapping pane where movements are
// picked up and dropped onto keys, a sensitivity pane, and a bridge
// status bar.
type Model struct {
	bindings *bindings.Store
	tuning   *sensitivity.Store
	dragCtl  *drag.Controller
	client   *bridge.Client
	events   <-chan bridge.Event
	keys     keyMap

	view        view
	cursor      int
	bridgeState bridge.State
	statusMsg   string
	statusIsErr bool
}

// New builds the TUI model. events must be the channel fed by the bridge
// client's notify callback.
func New(b *bindings.Store, s *sensitivity.Store, client *bridge.Client, events <-chan bridge.Event) *Model {
	return &Model{
		bindings:    b,
		tuning:      s,
		dragCtl:     drag.New(b),
		client:      client,
		events:      events,
		keys:        defaultKeyMap(),
		bridgeState: client.State(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.listenBridge()
}

func (m *Model) listenBridge() tea.Cmd {
	return func() tea.Msg {
		return BridgeEventMsg(<-m.events)
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BridgeEventMsg:
		m.bridgeState = msg.State
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), true)
		}
		return m, m.listenBridge()
	case StoresReloadedMsg:
		switch msg.Key {
		case bindings.StorageKey:
			m.bindings.Load()
		case sensitivity.StorageKey:
			m.tuning.Load()
		default:
			return m, nil
		}
		m.setStatus("configuration reloaded from disk", false)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a movement is picked up, every key is a drop candidate.
	if _, dragging := m.dragCtl.Dragging(); dragging {
		return m.handleDraggingKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.client.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		if m.view == mappingView {
			m.view = sensitivityView
		} else {
			m.view = mappingView
		}
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Bridge):
		m.toggleBridge()
		return m, nil
	case key.Matches(msg, m.keys.Push):
		if err := m.client.Push(); err != nil {
			m.setStatus(err.Error(), true)
		} else if m.bridgeState == bridge.Connected {
			m.setStatus("configuration pushed", false)
		}
		return m, nil
	}

	if m.view == mappingView {
		return m.handleMappingKeys(msg)
	}
	return m.handleSensitivityKeys(msg)
}

func (m *Model) handleMappingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	movements := catalog.Movements()
	current := movements[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Remap):
		m.dragCtl.BeginDrag(current.ID)
		m.setStatus(fmt.Sprintf("press the key for %s (esc to cancel)", current.Name), false)
	case key.Matches(msg, m.keys.Clear):
		m.bindings.Clear(current.ID)
		m.setStatus(fmt.Sprintf("%s unbound", current.Name), false)
	case key.Matches(msg, m.keys.Reset):
		m.bindings.ResetToDefault()
		m.setStatus("bindings reset to defaults", false)
	}
	return m, nil
}

func (m *Model) handleDraggingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.dragCtl.EndDrag()
		m.setStatus("remap cancelled", false)
		return m, nil
	case msg.String() == "ctrl+c":
		// "q" is a drop candidate here, so only ctrl+c quits mid-remap.
		m.client.Stop()
		return m, tea.Quit
	}

	code, ok := keyCodeFor(msg)
	if !ok {
		// Not a bindable key; the session stays open.
		return m, nil
	}
	if err := m.dragCtl.Drop(code); err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(fmt.Sprintf("bound %s", catalog.KeyLabel(code)), false)
	}
	return m, nil
}

func (m *Model) handleSensitivityKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	params := sensitivity.Parameters()
	p := params[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Lower):
		m.adjust(p, -p.Step)
	case key.Matches(msg, m.keys.Raise):
		m.adjust(p, p.Step)
	case key.Matches(msg, m.keys.Reset):
		m.tuning.ResetToDefault()
		m.setStatus("sensitivity reset to defaults", false)
	}
	return m, nil
}

// adjust steps a parameter, clamping the target to its range so repeated
// presses stop at the boundary instead of erroring.
func (m *Model) adjust(p sensitivity.Parameter, delta float64) {
	current, err := m.tuning.Get(p.Name)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	next := current + delta
	if next < p.Min {
		next = p.Min
	}
	if next > p.Max {
		next = p.Max
	}
	if err := m.tuning.Set(p.Name, next); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *Model) toggleBridge() {
	switch m.bridgeState {
	case bridge.Disconnected:
		m.setStatus("connecting to detection process...", false)
		m.client.Start()
	default:
		m.client.Stop()
		m.setStatus("bridge stopped", false)
	}
}

func (m *Model) rowCount() int {
	if m.view == mappingView {
		return len(catalog.Movements())
	}
	return len(sensitivity.Parameters())
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("MotionPlay"))
	b.WriteString("\n\n")

	if m.view == mappingView {
		b.WriteString(m.renderMapping())
	} else {
		b.WriteString(m.renderSensitivity())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderMapping() string {
	var b strings.Builder
	draggedID, dragging := m.dragCtl.Dragging()

	for i, movement := range catalog.Movements() {
		line := fmt.Sprintf("%s %-11s", movement.Icon, movement.Name)

		if key, ok := m.bindings.KeyFor(movement.ID); ok {
			line += KeyStyle.Render(catalog.KeyLabel(key))
		} else {
			line += UnboundStyle.Render("(unbound)")
		}

		switch {
		case dragging && movement.ID == draggedID:
			line = DraggingStyle.Render("» " + line)
		case i == m.cursor:
			line = SelectedStyle.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderSensitivity() string {
	var b strings.Builder

	for i, p := range sensitivity.Parameters() {
		val, err := m.tuning.Get(p.Name)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-22s %5.2f  %s", p.Name, val,
			StatusStyle.Render(fmt.Sprintf("[%.2f..%.2f]", p.Min, p.Max)))
		if i == m.cursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderStatusBar() string {
	var state string
	switch m.bridgeState {
	case bridge.Connected:
		state = ConnectedStyle.Render("● connected")
	case bridge.Connecting:
		state = ConnectingStyle.Render("◌ connecting")
	default:
		state = DisconnectedStyle.Render("○ disconnected")
	}

	status := m.statusMsg
	if m.statusIsErr {
		status = ErrorStyle.Render(status)
	} else {
		status = StatusStyle.Render(status)
	}
	return state + "  " + status
}

func (m *Model) renderHelp() string {
	if _, dragging := m.dragCtl.Dragging(); dragging {
		return HelpStyle.Render("press target key • esc cancel")
	}
	if m.view == mappingView {
		return HelpStyle.Render("enter remap • c clear • r reset • tab sensitivity • b bridge • p push • q quit")
	}
	return HelpStyle.Render("h/l adjust • r reset • tab mappings • b bridge • p push • q quit")
}
