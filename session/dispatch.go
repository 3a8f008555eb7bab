package session

import (
	"pgwire/pgerr"
	"pgwire/protocol"
	"pgwire/wire"
)

// processUntilReady is the reply loop (§4.4): read and dispatch frames
// until the state machine reaches ready_for_query or, for streaming
// operations, copy_in. The copy_in early exit is essential — the server
// sends nothing further until the client streams CopyData.
func (s *Session) processUntilReady() error {
	for s.state != StateReadyForQuery && s.state != StateCopyIn {
		frame, err := wire.ReadFrame(s.reader)
		if err != nil {
			s.state = StateNotConnected
			return &pgerr.TransportError{Op: "read", Err: err}
		}

		msg, err := protocol.Decode(frame.Code, frame.Payload)
		if err != nil {
			s.state = StateNotConnected
			return err
		}

		if s.tracer != nil {
			s.tracer.TraceMessage('B', msg)
		}

		if err := s.apply(msg); err != nil {
			s.state = StateNotConnected
			return err
		}
	}
	return nil
}

// apply mutates session state per the dispatch table in §4.4. frame
// payloads alias the chunk reader's buffer, so anything retained past this
// call (row and notification queue entries) is copied first.
func (s *Session) apply(msg protocol.Message) error {
	switch msg := msg.(type) {
	case *protocol.Authentication:
		if msg.Mode != protocol.AuthTypeOk {
			return &pgerr.AuthUnsupportedError{Mode: msg.Mode}
		}
		return nil

	case *protocol.BackendKeyData:
		s.pid = msg.ProcessID
		s.secretKey = msg.SecretKey
		s.havePid = true
		return nil

	case *protocol.ParameterStatus:
		s.params[msg.Name] = msg.Value
		return nil

	case *protocol.RowDescription:
		s.fields = msg.Fields
		s.rows.clear()
		s.format = BufferFormatQuery
		return nil

	case *protocol.DataRow:
		s.rows.push(cloneBytes(msg.Payload))
		return nil

	case *protocol.CommandComplete:
		s.notifications.push(": " + msg.CommandTag)
		s.state = StateComplete
		return nil

	case *protocol.EmptyQueryResponse:
		s.notifications.push("[Empty request]")
		return nil

	case *protocol.NoticeResponse:
		s.notifications.push(msg.Notice.String())
		return nil

	case *protocol.ErrorResponse:
		// server_error is non-fatal (§7): surfaced through the notification
		// queue, the reply loop keeps running for the mandatory trailing
		// ReadyForQuery (I5).
		s.notifications.push(msg.Notice.String())
		return nil

	case *protocol.NotificationResponse:
		s.notifications.push(msg.Channel + ": " + msg.Payload)
		return nil

	case *protocol.CopyInResponse:
		s.format = formatFromByte(msg.OverallFormat)
		s.state = StateCopyIn
		return nil

	case *protocol.CopyOutResponse:
		s.format = formatFromByte(msg.OverallFormat)
		s.rows.clear()
		s.state = StateCopyOut
		return nil

	case *protocol.CopyData:
		s.rows.push(cloneBytes(msg.Payload))
		return nil

	case *protocol.CopyDone:
		s.state = StateCopyDone
		return nil

	case *protocol.ReadyForQuery:
		s.txStat = txStatusFromByte(msg.TxStatus)
		s.state = StateReadyForQuery
		return nil

	default:
		return &pgerr.MalformedFrameError{Detail: "dispatch: unhandled message type"}
	}
}

func cloneBytes(src []byte) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

func formatFromByte(b byte) BufferFormat {
	if b == protocol.BinaryFormat {
		return BufferFormatCopyBinary
	}
	return BufferFormatCopyText
}

func txStatusFromByte(b byte) TransactionStatus {
	switch b {
	case protocol.TxStatusActive:
		return TxActive
	case protocol.TxStatusError:
		return TxError
	default:
		return TxIdle
	}
}
