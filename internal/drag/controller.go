package drag

import (
	"motionplay/internal/bindings"
	"motionplay/internal/catalog"
	"motionplay/internal/log"
)

// Controller collapses a multi-event drag gesture (start, hover, drop,
// cancel) into at most one binding assignment. It is the only component
// that mutates bindings in response to gestures, which keeps a cancelled
// drag from leaving a "currently dragging" flag behind.
//
// The session is a two-state machine: idle, or dragging one movement.
type Controller struct {
	bindings *bindings.Store
	dragged  string // movement id being dragged, "" when idle
}

// New creates an idle controller over the given binding store.
func New(b *bindings.Store) *Controller {
	return &Controller{bindings: b}
}

// BeginDrag starts a drag session for movementID. If a session is already
// active the new movement replaces it (last begin wins). Unknown movements
// are ignored.
func (c *Controller) BeginDrag(movementID string) {
	if _, ok := catalog.ByID(movementID); !ok {
		log.Debugf("drag: ignoring begin for unknown movement %q", movementID)
		return
	}
	c.dragged = movementID
}

// Dragging returns the movement currently being dragged, if any.
func (c *Controller) Dragging() (string, bool) {
	return c.dragged, c.dragged != ""
}

// Drop assigns the dragged movement to keyCode and ends the session.
// Stray drops while idle are no-ops. The session ends even when the
// assignment is rejected, so one gesture never produces two assignments.
func (c *Controller) Drop(keyCode string) error {
	if c.dragged == "" {
		return nil
	}
	movementID := c.dragged
	c.dragged = ""
	return c.bindings.Assign(movementID, keyCode)
}

// EndDrag cancels the session without an assignment, e.g. when the gesture
// ends outside any key target.
func (c *Controller) EndDrag() {
	c.dragged = ""
}
