// Package pgerr defines the error kinds a session can raise, following the
// error taxonomy of the wire protocol driver: transport failures and
// protocol violations are fatal, everything else preserves the session.
package pgerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the non-fatal kinds. Callers match these with
// errors.Is.
var (
	// ErrQueueEmpty is returned by a queue pop on an empty queue.
	ErrQueueEmpty = errors.New("pgerr: queue is empty")

	// ErrNoBufferFormat is returned by row projection when the session has
	// no buffer format established yet.
	ErrNoBufferFormat = errors.New("pgerr: no buffer format")
)

// InvalidStateError reports a public operation invoked from a state that
// does not permit it. The session is left unchanged.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("pgerr: %s is invalid in state %s", e.Op, e.State)
}

// MalformedFrameError reports a framing violation: a declared length that
// contradicts the bytes actually present, bad NUL-termination in a notice
// field list, or similar. Fatal to the session.
type MalformedFrameError struct {
	Detail string
}

func (e *MalformedFrameError) Error() string {
	return "pgerr: malformed frame: " + e.Detail
}

// UnknownCodeError reports a server message code this implementation does
// not recognize. Fatal to the session.
type UnknownCodeError struct {
	Code byte
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("pgerr: unknown message code %q (0x%02x)", string(e.Code), e.Code)
}

// AuthUnsupportedError reports an authentication mode other than
// AuthenticationOk. Fatal to the session; this driver only speaks trust
// authentication.
type AuthUnsupportedError struct {
	Mode uint32
}

func (e *AuthUnsupportedError) Error() string {
	return fmt.Sprintf("pgerr: unsupported authentication mode %d", e.Mode)
}

// TransportError wraps an I/O failure from the byte stream. Fatal to the
// session.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pgerr: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Notice carries the parsed fields of a NoticeResponse or ErrorResponse
// message before it is flattened into a notification-queue string. Notices
// are never returned as errors by the session (spec: server_error is
// surfaced through the notification queue), but the type is exported so
// that the decoded NoticeResponse and ErrorResponse messages in package
// protocol can carry the fields in structured form.
type Notice struct {
	Severity string
	Message  string
	Fields   map[byte]string
}

func (n Notice) String() string {
	return n.Severity + ": " + n.Message
}
