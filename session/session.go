// Package session implements the session state machine (C4, C5, C6): the
// synchronous, single-connection driver that negotiates startup, issues
// simple queries, streams result rows, and carries the COPY sub-protocol.
// Grounded on the teacher's pgconn.PgConn — a single struct owning the wire
// connection and everything the reply loop mutates — generalized from
// pgx's extended-protocol/typed-decoding surface down to the specification's
// simple-query, raw-bytes surface.
package session

import (
	"pgwire/pgerr"
	"pgwire/pgtrace"
	"pgwire/protocol"
	"pgwire/transport"
	"pgwire/wire"
)

// Session owns the byte-stream transport, the session state, the
// transaction status, the backend key pair, the current buffer format, the
// row queue, the notification queue, the field-descriptor list, and the
// parameter table (§3). Created disconnected; connects once; must not be
// reused after Terminate.
//
// Not safe for concurrent use: at most one goroutine may call Session
// methods at a time, matching the specification's single-threaded model.
type Session struct {
	transport transport.Transport
	reader    *wire.ChunkReader
	tracer    *pgtrace.Tracer
	endpoint  transport.Config

	state  State
	txStat TransactionStatus

	pid       uint32
	secretKey uint32
	havePid   bool

	format BufferFormat
	fields []protocol.FieldDescription

	rows          rowQueue
	notifications notificationQueue
	params        map[string]string

	// sendBuf is reused across writes to avoid an allocation per outbound
	// message, the same shape as the teacher's PgConn.wbuf.
	sendBuf []byte
}

// New returns a disconnected Session. tracer may be nil, in which case
// tracing is skipped at zero cost.
func New(tracer *pgtrace.Tracer) *Session {
	return &Session{
		state:  StateNotConnected,
		params: make(map[string]string),
		tracer: tracer,
	}
}

// ConnectLocal dials a local domain socket per §6, defaulting dir, prefix,
// and port when empty.
func (s *Session) ConnectLocal(dir, prefix, port string) error {
	cfg := transport.ResolveLocal("", "", dir, prefix, port)
	return s.connect(cfg)
}

// ConnectTCP dials host:service per §6, defaulting both when empty.
func (s *Session) ConnectTCP(host, service string) error {
	cfg := transport.ResolveTCP("", "", host, service)
	return s.connect(cfg)
}

func (s *Session) connect(cfg transport.Config) error {
	if s.state != StateNotConnected {
		return &pgerr.InvalidStateError{Op: "connect", State: s.state.String()}
	}

	tp, err := transport.Dial(cfg)
	if err != nil {
		return &pgerr.TransportError{Op: "connect", Err: err}
	}

	s.transport = tp
	s.reader = wire.NewChunkReader(readerFunc(tp.ReadFull), 0)
	s.endpoint = cfg
	s.state = StateNotStarted
	return nil
}

// readerFunc adapts Transport.ReadFull's (n, err) shape to io.Reader so
// ChunkReader — built against io.Reader like the teacher's pgproto3 one —
// can drive it without depending on the transport package. ReadFull blocks
// until its whole buffer is filled, so each Read asks it for one byte only;
// ChunkReader's io.ReadAtLeast then never waits on bytes it does not need.
type readerFunc func(buf []byte) (int, error)

func (f readerFunc) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	return f(buf[:1])
}

// State returns the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// TransactionStatus returns the status from the most recent ReadyForQuery.
func (s *Session) TransactionStatus() TransactionStatus { return s.txStat }

// BufferFormat returns the format of the rows currently in the row queue.
func (s *Session) BufferFormat() BufferFormat { return s.format }

// BackendKeyData returns the (pid, secret_key) pair captured during
// startup and whether it has been set yet (I4).
func (s *Session) BackendKeyData() (pid, secretKey uint32, ok bool) {
	return s.pid, s.secretKey, s.havePid
}

// Parameter looks up a run-time parameter by name (P4).
func (s *Session) Parameter(name string) (value string, present bool) {
	value, present = s.params[name]
	return value, present
}

// Parameters returns a copy of the full parameter table. Mutating the
// result does not affect the session.
func (s *Session) Parameters() map[string]string {
	out := make(map[string]string, len(s.params))
	for k, v := range s.params {
		out[k] = v
	}
	return out
}

// FieldDescriptors returns the field map from the most recent
// RowDescription, or nil if none has been seen.
func (s *Session) FieldDescriptors() []protocol.FieldDescription {
	return s.fields
}

func (s *Session) requireState(op string, allowed ...State) error {
	for _, st := range allowed {
		if s.state == st {
			return nil
		}
	}
	return &pgerr.InvalidStateError{Op: op, State: s.state.String()}
}

func (s *Session) traceSend(name string, fields ...any) {
	if s.tracer != nil {
		s.tracer.TraceClientCommand(name, fields...)
	}
}

func (s *Session) send(buf []byte) error {
	if err := s.transport.WriteAll(buf); err != nil {
		s.state = StateNotConnected
		return &pgerr.TransportError{Op: "write", Err: err}
	}
	return nil
}

