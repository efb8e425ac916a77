package leadform

import "encoding/json"

// submitResultMsg is sent when the lead POST resolves.
type submitResultMsg struct {
	Body json.RawMessage
	Err  error
}
