package protocol

import "pgwire/wire"

// AppendCancelRequest appends a CancelRequest to dst: a code-less message
// beginning directly with its length, carrying the special cancel request
// code in place of a protocol version, and the backend key pair captured
// during startup. Total length is always 16 bytes.
//
// Per the specification this must be sent on a second connection to the
// same endpoint, never on the session whose query is being cancelled.
func AppendCancelRequest(dst []byte, processID, secretKey uint32) []byte {
	dst = wire.AppendInt32(dst, 16)
	dst = wire.AppendInt32(dst, cancelRequestCode)
	dst = wire.AppendUint32(dst, processID)
	dst = wire.AppendUint32(dst, secretKey)
	return dst
}
