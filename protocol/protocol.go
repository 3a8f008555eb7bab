// Package protocol implements the message layer of the PostgreSQL
// frontend/backend wire protocol version 3.0: the client message builders
// (§4.3 of the driving specification) and the backend message structs that
// the reply dispatcher decodes into (§4.4).
//
// Every backend message type has a Decode(payload []byte) error method.
// payload is the frame body handed back by wire.ReadFrame — the code and
// length have already been stripped. Every client message is a pure
// function from arguments to a self-framed []byte, appended to an optional
// destination buffer, mirroring pgproto3's Encode(dst []byte) []byte shape.
package protocol

// Backend message type codes, keyed the way the dispatch table in the
// specification names them. 'S' and 'H' also mean Sync and Flush on the
// client side; those client codes live in their own const block below so a
// decoded backend code is never compared against them — see the driving
// specification's design notes on the source's letter clashes.
const (
	CodeAuthentication     = 'R'
	CodeBackendKeyData     = 'K'
	CodeParameterStatus    = 'S'
	CodeRowDescription     = 'T'
	CodeDataRow            = 'D'
	CodeCommandComplete    = 'C'
	CodeEmptyQueryResponse = 'I'
	CodeNoticeResponse     = 'N'
	CodeErrorResponse      = 'E'
	CodeNotificationResp   = 'A'
	CodeCopyInResponse     = 'G'
	CodeCopyOutResponse    = 'H'
	CodeCopyData           = 'd'
	CodeCopyDone           = 'c'
	CodeReadyForQuery      = 'Z'
)

// Client message type codes.
const (
	ClientCodeQuery     = 'Q'
	ClientCodeTerminate = 'X'
	ClientCodeSync      = 'S'
	ClientCodeFlush     = 'H'
	ClientCodeCopyData  = 'd'
	ClientCodeCopyDone  = 'c'
	ClientCodeCopyFail  = 'f'
)

// protocolVersion3 is 3.0 encoded as (major<<16 | minor), i.e. 0x00030000.
const protocolVersion3 = 3 << 16

// cancelRequestCode identifies a Cancel message; it takes the place of a
// protocol version number at the front of a code-less message, the same way
// SSLRequest and GSSENCRequest do.
const cancelRequestCode = 80877102
