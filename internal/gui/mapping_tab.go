//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"motionplay/internal/catalog"
)

// bindableKeys is the palette of drop targets offered in the mapping tab.
// Any key code is valid on the wire; these are the ones a seated player
// can comfortably reach.
var bindableKeys = []string{
	"Space", "ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
	"KeyW", "KeyA", "KeyS", "KeyD",
}

// createMappingTab builds the drag-and-drop remapping surface: a card per
// movement on the left, the key palette on the right. Dragging a card onto
// a key rebinds the movement; releasing anywhere else cancels.
func (a *App) createMappingTab() fyne.CanvasObject {
	bindingLabels := make(map[string]*widget.Label, len(catalog.Movements()))

	cards := container.NewVBox()
	for _, movement := range catalog.Movements() {
		label := widget.NewLabel("")
		bindingLabels[movement.ID] = label
		cards.Add(newMovementCard(a, movement, label))
	}

	keys := container.NewVBox(widget.NewLabel("Keys"))
	a.keyTargets = a.keyTargets[:0]
	for _, code := range bindableKeys {
		target := newKeyTarget(code)
		a.keyTargets = append(a.keyTargets, target)
		keys.Add(target)
	}

	a.refreshMapping = func() {
		for id, label := range bindingLabels {
			if key, ok := a.bindings.KeyFor(id); ok {
				label.SetText(catalog.KeyLabel(key))
			} else {
				label.SetText("(unbound)")
			}
		}
	}
	a.refreshMapping()

	reset := widget.NewButton("Reset to defaults", func() {
		a.bindings.ResetToDefault()
		a.refreshMapping()
	})

	grid := container.NewHSplit(cards, keys)
	grid.SetOffset(0.6)
	return container.NewBorder(nil, reset, nil, nil, grid)
}

// movementCard is the draggable handle for one movement. The drag
// controller owns the gesture; the card only reports begin, end, and the
// pointer position for hit testing.
type movementCard struct {
	widget.BaseWidget
	app      *App
	movement catalog.Movement
	binding  *widget.Label

	lastPointer fyne.Position
}

func newMovementCard(a *App, m catalog.Movement, binding *widget.Label) *movementCard {
	c := &movementCard{app: a, movement: m, binding: binding}
	c.ExtendBaseWidget(c)
	return c
}

func (c *movementCard) CreateRenderer() fyne.WidgetRenderer {
	title := widget.NewLabelWithStyle(
		fmt.Sprintf("%s %s", c.movement.Icon, c.movement.Name),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	desc := widget.NewLabel(c.movement.Description)
	desc.Wrapping = fyne.TextWrapWord

	box := container.NewVBox(title, container.NewHBox(desc, c.binding))
	return widget.NewSimpleRenderer(container.NewPadded(box))
}

// Dragged implements fyne.Draggable.
func (c *movementCard) Dragged(ev *fyne.DragEvent) {
	if _, dragging := c.app.dragCtl.Dragging(); !dragging {
		c.app.dragCtl.BeginDrag(c.movement.ID)
	}
	c.lastPointer = ev.AbsolutePosition
}

// DragEnd implements fyne.Draggable: drop on the key target under the
// pointer, or cancel when released anywhere else.
func (c *movementCard) DragEnd() {
	target := c.app.keyTargetAt(c.lastPointer)
	if target == "" {
		c.app.dragCtl.EndDrag()
		return
	}
	if err := c.app.dragCtl.Drop(target); err == nil && c.app.refreshMapping != nil {
		c.app.refreshMapping()
	}
}

// TappedSecondary clears the binding (right-click).
func (c *movementCard) TappedSecondary(_ *fyne.PointEvent) {
	c.app.bindings.Clear(c.movement.ID)
	if c.app.refreshMapping != nil {
		c.app.refreshMapping()
	}
}

// keyTarget is one drop zone in the key palette.
type keyTarget struct {
	widget.BaseWidget
	code string
}

func newKeyTarget(code string) *keyTarget {
	k := &keyTarget{code: code}
	k.ExtendBaseWidget(k)
	return k
}

func (k *keyTarget) CreateRenderer() fyne.WidgetRenderer {
	label := widget.NewLabelWithStyle(catalog.KeyLabel(k.code),
		fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	return widget.NewSimpleRenderer(container.NewPadded(label))
}

// keyTargetAt returns the key code of the target containing the given
// absolute position, or "" when the position is outside every target.
func (a *App) keyTargetAt(pos fyne.Position) string {
	driver := a.fyneApp.Driver()
	for _, target := range a.keyTargets {
		origin := driver.AbsolutePositionForObject(target)
		size := target.Size()
		if pos.X >= origin.X && pos.X <= origin.X+size.Width &&
			pos.Y >= origin.Y && pos.Y <= origin.Y+size.Height {
			return target.code
		}
	}
	return ""
}
