package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// ParameterStatus is the 'S' backend message: a broadcast key/value update
// to the session's run-time parameter table (e.g. server_version,
// client_encoding). Not to be confused with the client's Sync message,
// which reuses the letter 'S' in the other direction.
type ParameterStatus struct {
	Name  string
	Value string
}

// Decode implements the message decoder contract for 'S'.
func (dst *ParameterStatus) Decode(payload []byte) error {
	name, rest, err := wire.ReadCString(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "ParameterStatus: name: " + err.Error()}
	}
	value, _, err := wire.ReadCString(rest)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "ParameterStatus: value: " + err.Error()}
	}
	dst.Name = name
	dst.Value = value
	return nil
}
