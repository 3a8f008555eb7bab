package session

import "pgwire/protocol"

// BufferFormat is the shape of the buffers currently sitting in the row
// queue. Session reuses protocol's definition directly rather than
// maintaining a parallel enum only ProjectRow would ever see.
type BufferFormat = protocol.BufferFormat

const (
	BufferFormatNone       = protocol.BufferFormatNone
	BufferFormatQuery      = protocol.BufferFormatQuery
	BufferFormatCopyText   = protocol.BufferFormatCopyText
	BufferFormatCopyBinary = protocol.BufferFormatCopyBinary
)

// State is the session's lifecycle state (§3), exactly one at a time.
// Modeled as a stringer-backed int sum type the way the teacher's
// tracelog.LogLevel is, rather than as an interface.
type State int

const (
	StateNotConnected State = iota
	StateNotStarted
	StateReadyForQuery
	StateInQuery
	StateCopyIn
	StateCopyOut
	StateCopyDone
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateNotConnected:
		return "not_connected"
	case StateNotStarted:
		return "not_started"
	case StateReadyForQuery:
		return "ready_for_query"
	case StateInQuery:
		return "in_query"
	case StateCopyIn:
		return "copy_in"
	case StateCopyOut:
		return "copy_out"
	case StateCopyDone:
		return "copy_done"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// TransactionStatus mirrors the byte ReadyForQuery carries (§3).
type TransactionStatus int

const (
	TxIdle TransactionStatus = iota
	TxActive
	TxError
)

func (t TransactionStatus) String() string {
	switch t {
	case TxIdle:
		return "idle"
	case TxActive:
		return "active"
	case TxError:
		return "error"
	default:
		return "unknown"
	}
}

