package bridge

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Transport is the duplex message channel to the detection process. The
// production implementation is a websocket; tests substitute a scripted
// fake through the Dialer hook.
type Transport interface {
	WriteJSON(v interface{}) error
	// ReadMessage blocks until a message arrives or the channel dies.
	ReadMessage() ([]byte, error)
	Close() error
}

// Dialer opens a transport to the given endpoint.
type Dialer func(endpoint string) (Transport, error)

// wsDialer deliberately sets no handshake timeout: a hung connection
// attempt is resolved by the transport's own error or by Stop, matching
// the rest of the lifecycle.
var wsDialer = &websocket.Dialer{}

// DialWebsocket opens a websocket connection to endpoint
// (e.g. ws://localhost:8765).
func DialWebsocket(endpoint string) (Transport, error) {
	conn, _, err := wsDialer.Dial(endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return &wsTransport{conn: conn}, nil
}

type wsTransport struct {
	conn *websocket.Conn
}

func (t *wsTransport) WriteJSON(v interface{}) error {
	return t.conn.WriteJSON(v)
}

func (t *wsTransport) ReadMessage() ([]byte, error) {
	_, data, err := t.conn.ReadMessage()
	return data, err
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}
