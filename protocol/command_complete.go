package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// CommandComplete is the 'C' backend message: the tag string for a
// completed command, e.g. "SELECT 1" or "COPY 5".
type CommandComplete struct {
	CommandTag string
}

// Decode implements the message decoder contract for 'C'.
func (dst *CommandComplete) Decode(payload []byte) error {
	tag, _, err := wire.ReadCString(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "CommandComplete: " + err.Error()}
	}
	dst.CommandTag = tag
	return nil
}

// EmptyQueryResponse is the 'I' backend message: sent instead of
// CommandComplete when the client's SQL string contained no statement.
type EmptyQueryResponse struct{}

// Decode implements the message decoder contract for 'I'.
func (dst *EmptyQueryResponse) Decode(payload []byte) error {
	return nil
}
