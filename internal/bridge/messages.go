package bridge

// The wire contract with the detection process has exactly two outbound
// message kinds. Nothing is resent automatically and no acknowledgement is
// consumed; inbound traffic only matters as transport liveness.

// configMessage carries the current binding and sensitivity snapshots. It
// is sent exactly once per successful connection, immediately after the
// channel opens. A store that has never been saved is sent as null.
type configMessage struct {
	Type        string             `json:"type"`
	Mappings    map[string]*string `json:"mappings"`
	Sensitivity map[string]float64 `json:"sensitivity"`
}

// stopMessage tells the detection process the user is done. Sent at most
// once per connection, best-effort, immediately before the client closes
// the channel.
type stopMessage struct {
	Type string `json:"type"`
}
