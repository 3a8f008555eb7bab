package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// AuthTypeOk is the only authentication mode this driver accepts. Anything
// else fails with a pgerr.AuthUnsupportedError; SASL, MD5, GSS, and
// cleartext-password exchanges are out of scope.
const AuthTypeOk = 0

// Authentication is the 'R' backend message. Only Mode is decoded; per the
// specification, no bytes beyond the mode are consumed even when Mode is
// AuthTypeOk, since this driver never negotiates a challenge.
type Authentication struct {
	Mode uint32
}

// Decode implements the message decoder contract for 'R'.
func (dst *Authentication) Decode(payload []byte) error {
	mode, _, err := wire.ReadUint32(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "Authentication: " + err.Error()}
	}
	dst.Mode = mode
	return nil
}
