package session

import (
	"pgwire/pgerr"
	"pgwire/protocol"
	"pgwire/transport"
)

// Startup sends the Startup message and drives the reply loop until the
// server reports ready_for_query (§4.5). database defaults to user when
// empty, per §4.3.
func (s *Session) Startup(user, database string) error {
	if err := s.requireState("startup", StateNotStarted); err != nil {
		return err
	}

	s.sendBuf = protocol.AppendStartupMessage(s.sendBuf[:0], user, database)
	s.traceSend("StartupMessage", user, database)
	if err := s.send(s.sendBuf); err != nil {
		return err
	}

	return s.processUntilReady()
}

// Query issues a simple-query message and drives the reply loop until the
// session reaches ready_for_query or copy_in (§4.5). A COPY OUT is drained
// inside the same loop, so Query returns from it at ready_for_query.
func (s *Session) Query(sql string) error {
	if err := s.requireState("query", StateReadyForQuery); err != nil {
		return err
	}

	s.state = StateInQuery
	s.sendBuf = protocol.AppendQuery(s.sendBuf[:0], sql)
	s.traceSend("Query", sql)
	if err := s.send(s.sendBuf); err != nil {
		return err
	}

	return s.processUntilReady()
}

// CopyData streams one chunk of COPY IN data. Allowed only while the
// session is suspended in copy_in.
func (s *Session) CopyData(data []byte) error {
	if err := s.requireState("copy_data", StateCopyIn); err != nil {
		return err
	}

	s.sendBuf = protocol.AppendCopyData(s.sendBuf[:0], data)
	s.traceSend("CopyData", len(data))
	return s.send(s.sendBuf)
}

// CopyDone signals the end of COPY IN data and drives the reply loop until
// ready_for_query.
func (s *Session) CopyDone() error {
	if err := s.requireState("copy_done", StateCopyIn); err != nil {
		return err
	}

	s.sendBuf = protocol.AppendCopyDone(s.sendBuf[:0])
	s.traceSend("CopyDone")
	if err := s.send(s.sendBuf); err != nil {
		return err
	}

	s.state = StateInQuery
	return s.processUntilReady()
}

// CopyFail aborts COPY IN with a human-readable reason and drives the reply
// loop until ready_for_query.
func (s *Session) CopyFail(reason string) error {
	if err := s.requireState("copy_fail", StateCopyIn); err != nil {
		return err
	}

	s.sendBuf = protocol.AppendCopyFail(s.sendBuf[:0], reason)
	s.traceSend("CopyFail", reason)
	if err := s.send(s.sendBuf); err != nil {
		return err
	}

	s.state = StateInQuery
	return s.processUntilReady()
}

// Sync sends a Sync message. Valid from any state after startup; it is a
// pure side effect and does not change session state itself.
func (s *Session) Sync() error {
	if s.state == StateNotConnected || s.state == StateNotStarted {
		return &pgerr.InvalidStateError{Op: "sync", State: s.state.String()}
	}
	s.sendBuf = protocol.AppendSync(s.sendBuf[:0])
	s.traceSend("Sync")
	return s.send(s.sendBuf)
}

// Flush sends a Flush message. Same guard as Sync.
func (s *Session) Flush() error {
	if s.state == StateNotConnected || s.state == StateNotStarted {
		return &pgerr.InvalidStateError{Op: "flush", State: s.state.String()}
	}
	s.sendBuf = protocol.AppendFlush(s.sendBuf[:0])
	s.traceSend("Flush")
	return s.send(s.sendBuf)
}

// Cancel opens a brand-new connection to this session's endpoint and sends
// a Cancel message carrying the backend key data captured during startup
// (§4.3, §5). The cancel connection is entirely separate from this
// session's own transport and is closed before Cancel returns — the
// protocol requires cancellation on a second connection, never on the one
// running the query being cancelled.
func (s *Session) Cancel() error {
	if !s.havePid {
		return &pgerr.InvalidStateError{Op: "cancel", State: "no backend key data"}
	}
	if s.state == StateNotConnected || s.state == StateNotStarted {
		return &pgerr.InvalidStateError{Op: "cancel", State: s.state.String()}
	}

	tp, err := transport.Dial(s.endpoint)
	if err != nil {
		return &pgerr.TransportError{Op: "cancel dial", Err: err}
	}
	defer tp.Close()

	buf := protocol.AppendCancelRequest(nil, s.pid, s.secretKey)
	s.traceSend("CancelRequest")
	if err := tp.WriteAll(buf); err != nil {
		return &pgerr.TransportError{Op: "cancel write", Err: err}
	}
	return nil
}

// Terminate sends a best-effort Terminate message and closes the
// transport. Transport errors during the Terminate write are suppressed —
// by the time a caller wants to terminate, the session is going away
// regardless of whether the server sees the notice.
func (s *Session) Terminate() error {
	if s.state == StateNotConnected {
		return nil
	}

	if s.transport != nil {
		s.sendBuf = protocol.AppendTerminate(s.sendBuf[:0])
		s.traceSend("Terminate")
		_ = s.transport.WriteAll(s.sendBuf)
		_ = s.transport.Close()
	}

	s.state = StateNotConnected
	return nil
}

// RowQueueEmpty reports whether the row queue currently holds anything.
func (s *Session) RowQueueEmpty() bool { return s.rows.empty() }

// PopRow removes and returns the oldest raw row payload.
func (s *Session) PopRow() ([]byte, error) { return s.rows.pop() }

// PopRowAsStrings removes the oldest raw row and projects it into strings
// using the current buffer format and field map (C7).
func (s *Session) PopRowAsStrings() ([]string, error) {
	row, err := s.rows.pop()
	if err != nil {
		return nil, err
	}
	return protocol.ProjectRow(s.format, row, s.fields)
}

// ClearRowQueue discards every queued row.
func (s *Session) ClearRowQueue() { s.rows.clear() }

// RowQueueSize returns the number of rows currently queued.
func (s *Session) RowQueueSize() int { return s.rows.size() }

// NotificationQueueEmpty reports whether the notification queue currently
// holds anything.
func (s *Session) NotificationQueueEmpty() bool { return s.notifications.empty() }

// PopNotification removes and returns the oldest formatted notification.
func (s *Session) PopNotification() (string, error) { return s.notifications.pop() }

// ClearNotificationQueue discards every queued notification.
func (s *Session) ClearNotificationQueue() { s.notifications.clear() }
