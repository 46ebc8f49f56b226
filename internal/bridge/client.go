package bridge

import (
	"fmt"
	"sync"

	"motionplay/internal/log"
)

// State is the bridge connection state. There is no separate stopped
// state: a stopped bridge is simply Disconnected again.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Event is delivered to the notify callback on every state transition.
// Err is non-nil only for the single error condition of the bridge, a
// connection that failed to open or died unexpectedly. A user-initiated
// stop transitions to Disconnected with a nil Err.
type Event struct {
	State State
	Err   error
}

// BindingSource provides the binding snapshot for the config message.
type BindingSource interface {
	Snapshot() map[string]*string
	HasSaved() bool
}

// SensitivitySource provides the sensitivity snapshot for the config
// message.
type SensitivitySource interface {
	Snapshot() map[string]float64
	HasSaved() bool
}

// Config wires a Client to its collaborators.
type Config struct {
	// Endpoint of the detection process, e.g. ws://localhost:8765.
	Endpoint string

	Bindings    BindingSource
	Sensitivity SensitivitySource

	// Dial opens the transport. Defaults to DialWebsocket.
	Dial Dialer

	// Notify receives state transition events. Called from bridge
	// goroutines, never while the client's lock is held. Optional.
	Notify func(Event)
}

// Client manages the single connection to the detection process and the
// config/stop protocol over it. All transitions are serialized under one
// lock; results of superseded dials and reads are discarded by comparing
// a connection generation counter, so redundant Start/Stop calls from an
// impatient user are safe no-ops.
type Client struct {
	mu    sync.Mutex
	state State
	conn  Transport
	gen   int

	endpoint    string
	dial        Dialer
	bindings    BindingSource
	sensitivity SensitivitySource
	notify      func(Event)
}

// New creates a disconnected client.
func New(cfg Config) *Client {
	dial := cfg.Dial
	if dial == nil {
		dial = DialWebsocket
	}
	return &Client{
		state:       Disconnected,
		endpoint:    cfg.Endpoint,
		dial:        dial,
		bindings:    cfg.Bindings,
		sensitivity: cfg.Sensitivity,
		notify:      cfg.Notify,
	}
}

// State returns the current connection state. All UI derives from this
// single value; the client keeps no separate connected/running booleans.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start opens the connection. The state moves to Connecting before Start
// returns; the outcome arrives later through the notify callback. Calling
// Start while Connecting or Connected is a no-op.
func (c *Client) Start() {
	c.mu.Lock()
	if c.state != Disconnected {
		c.mu.Unlock()
		log.Debugf("bridge: start ignored in state %s", c.state)
		return
	}
	c.gen++
	gen := c.gen
	ev := c.transitionLocked(Connecting, nil)
	c.mu.Unlock()

	c.emit(ev)
	go c.connect(gen)
}

// Stop sends one best-effort stop message, closes the channel, and returns
// to Disconnected. From Connecting it cancels the pending dial. Calling
// Stop while Disconnected is a no-op. An intentional stop never produces
// an error event.
func (c *Client) Stop() {
	c.mu.Lock()
	if c.state == Disconnected {
		c.mu.Unlock()
		return
	}
	conn := c.conn
	c.conn = nil
	c.gen++ // invalidate pending dial or reader results
	ev := c.transitionLocked(Disconnected, nil)
	c.mu.Unlock()

	if conn != nil {
		if err := conn.WriteJSON(stopMessage{Type: "stop"}); err != nil {
			log.Debugf("bridge: stop message not delivered: %v", err)
		}
		if err := conn.Close(); err != nil {
			log.Debugf("bridge: close: %v", err)
		}
	}
	c.emit(ev)
}

// Push resends the config message on the live connection, for applying
// changed bindings or thresholds without a reconnect. No-op unless
// Connected.
func (c *Client) Push() error {
	c.mu.Lock()
	if c.state != Connected || c.conn == nil {
		c.mu.Unlock()
		return nil
	}
	conn := c.conn
	msg := c.buildConfig()
	c.mu.Unlock()

	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("bridge: push config: %w", err)
	}
	return nil
}

// connect completes an in-flight Start on its own goroutine.
func (c *Client) connect(gen int) {
	conn, err := c.dial(c.endpoint)

	c.mu.Lock()
	if gen != c.gen {
		// Stopped while the dial was in flight; the result is stale.
		c.mu.Unlock()
		if err == nil {
			conn.Close()
		}
		return
	}
	if err != nil {
		ev := c.transitionLocked(Disconnected,
			fmt.Errorf("could not connect to %s: %w", c.endpoint, err))
		c.mu.Unlock()
		c.emit(ev)
		return
	}

	c.conn = conn
	ev := c.transitionLocked(Connected, nil)
	msg := c.buildConfig()
	c.mu.Unlock()
	c.emit(ev)

	// Exactly one config message per successful connection, sent
	// immediately after open.
	if err := conn.WriteJSON(msg); err != nil {
		c.dropConnection(conn, gen, fmt.Errorf("could not send config: %w", err))
		return
	}

	go c.readLoop(conn, gen)
}

// readLoop drains inbound traffic. The protocol defines no inbound
// messages for this client (acknowledgements are discarded); reading only
// serves to observe the channel dying.
func (c *Client) readLoop(conn Transport, gen int) {
	for {
		if _, err := conn.ReadMessage(); err != nil {
			c.dropConnection(conn, gen, fmt.Errorf("connection lost: %w", err))
			return
		}
	}
}

// dropConnection handles an unexpected transport failure. If the
// generation is stale the failure belongs to a connection Stop already
// tore down, and no event is surfaced.
func (c *Client) dropConnection(conn Transport, gen int, cause error) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.conn = nil
	c.gen++
	ev := c.transitionLocked(Disconnected, cause)
	c.mu.Unlock()

	conn.Close()
	c.emit(ev)
}

func (c *Client) buildConfig() configMessage {
	msg := configMessage{Type: "config"}
	if c.bindings != nil && c.bindings.HasSaved() {
		msg.Mappings = c.bindings.Snapshot()
	}
	if c.sensitivity != nil && c.sensitivity.HasSaved() {
		msg.Sensitivity = c.sensitivity.Snapshot()
	}
	return msg
}

func (c *Client) transitionLocked(next State, err error) Event {
	log.Debugf("bridge: %s -> %s", c.state, next)
	c.state = next
	return Event{State: next, Err: err}
}

func (c *Client) emit(ev Event) {
	if ev.Err != nil {
		log.Warnf("bridge: %v", ev.Err)
	}
	if c.notify != nil {
		c.notify(ev)
	}
}
