package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// BackendKeyData is the 'K' backend message: the (pid, secret_key) pair the
// server sends once, so the client can later cancel in-flight requests over
// a second connection.
type BackendKeyData struct {
	ProcessID uint32
	SecretKey uint32
}

// Decode implements the message decoder contract for 'K'.
func (dst *BackendKeyData) Decode(payload []byte) error {
	pid, rest, err := wire.ReadUint32(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "BackendKeyData: " + err.Error()}
	}
	key, _, err := wire.ReadUint32(rest)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "BackendKeyData: " + err.Error()}
	}
	dst.ProcessID = pid
	dst.SecretKey = key
	return nil
}
