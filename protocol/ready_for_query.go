package protocol

import "pgwire/pgerr"

// Transaction status bytes carried by ReadyForQuery.
const (
	TxStatusIdle   = 'I'
	TxStatusActive = 'T'
	TxStatusError  = 'E'
)

// ReadyForQuery is the 'Z' backend message: the server's signal that it has
// finished processing prior work and will accept the next client message.
type ReadyForQuery struct {
	TxStatus byte
}

// Decode implements the message decoder contract for 'Z'.
func (dst *ReadyForQuery) Decode(payload []byte) error {
	if len(payload) != 1 {
		return &pgerr.MalformedFrameError{Detail: "ReadyForQuery: expected 1 byte body"}
	}
	switch payload[0] {
	case TxStatusIdle, TxStatusActive, TxStatusError:
		dst.TxStatus = payload[0]
		return nil
	default:
		return &pgerr.MalformedFrameError{Detail: "ReadyForQuery: unknown transaction status byte"}
	}
}
