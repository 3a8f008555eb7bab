package pgtrace

import (
	"fmt"
	"strings"

	"pgwire/protocol"
)

// Tracer renders every frontend/backend message a Session sends or receives
// as a single line through a Logger, roughly mimicking the format libpq's
// PQtrace produces and grounded on pgproto3's LibpqMessageTracer. sender is
// 'F' for a message the client sent, 'B' for one the backend sent.
type Tracer struct {
	Logger Logger

	// Level is the level messages are logged at. Defaults to LevelTrace.
	Level Level
}

// TraceMessage logs one backend message. msg may be any protocol.Message;
// client-side messages are logged with TraceClientCommand instead.
func (t *Tracer) TraceMessage(sender byte, msg protocol.Message) {
	if t == nil || t.Logger == nil {
		return
	}
	level := t.Level
	if level == 0 {
		level = LevelTrace
	}

	t.Logger.Log(level, describeMessage(msg), map[string]any{"sender": string(sender)})
}

// TraceClientCommand logs a client-originated command that has no
// protocol.Message decoder counterpart (Query, Startup, Terminate, Sync,
// Flush, CopyData, CopyDone, CopyFail all fall in this category on the
// client side, since this driver only decodes backend messages).
func (t *Tracer) TraceClientCommand(name string, fields ...any) {
	if t == nil || t.Logger == nil {
		return
	}
	level := t.Level
	if level == 0 {
		level = LevelTrace
	}

	sb := &strings.Builder{}
	sb.WriteString(name)
	if len(fields) > 0 {
		sb.WriteByte('\t')
	}
	for _, f := range fields {
		fmt.Fprintf(sb, " %v", f)
	}
	t.Logger.Log(level, sb.String(), map[string]any{"sender": "F"})
}

func describeMessage(msg protocol.Message) string {
	switch msg := msg.(type) {
	case *protocol.Authentication:
		return fmt.Sprintf("Authentication\t %d", msg.Mode)
	case *protocol.BackendKeyData:
		return fmt.Sprintf("BackendKeyData\t %d %d", msg.ProcessID, msg.SecretKey)
	case *protocol.ParameterStatus:
		return fmt.Sprintf("ParameterStatus\t %s %s", traceQuoted(msg.Name), traceQuoted(msg.Value))
	case *protocol.RowDescription:
		sb := &strings.Builder{}
		fmt.Fprintf(sb, "RowDescription\t %d", len(msg.Fields))
		for _, fd := range msg.Fields {
			fmt.Fprintf(sb, " %s %d %d %d %d %d %d", traceQuoted(fd.Name), fd.TableOID, fd.ColumnNumber, fd.DataTypeOID, fd.TypeSize, fd.TypeModifier, fd.Format)
		}
		return sb.String()
	case *protocol.DataRow:
		return fmt.Sprintf("DataRow\t %d bytes", len(msg.Payload))
	case *protocol.CommandComplete:
		return fmt.Sprintf("CommandComplete\t %s", traceQuoted(msg.CommandTag))
	case *protocol.EmptyQueryResponse:
		return "EmptyQueryResponse"
	case *protocol.NoticeResponse:
		return fmt.Sprintf("NoticeResponse\t %s %s", msg.Severity, traceQuoted(msg.Message))
	case *protocol.ErrorResponse:
		return fmt.Sprintf("ErrorResponse\t %s %s", msg.Severity, traceQuoted(msg.Message))
	case *protocol.NotificationResponse:
		return fmt.Sprintf("NotificationResponse\t %d %s %s", msg.ProcessID, traceQuoted(msg.Channel), traceQuoted(msg.Payload))
	case *protocol.CopyInResponse:
		return fmt.Sprintf("CopyInResponse\t %d %d", msg.OverallFormat, len(msg.ColumnFormatCodes))
	case *protocol.CopyOutResponse:
		return fmt.Sprintf("CopyOutResponse\t %d %d", msg.OverallFormat, len(msg.ColumnFormatCodes))
	case *protocol.CopyData:
		return fmt.Sprintf("CopyData\t %d bytes", len(msg.Payload))
	case *protocol.CopyDone:
		return "CopyDone"
	case *protocol.ReadyForQuery:
		return fmt.Sprintf("ReadyForQuery\t %c", msg.TxStatus)
	default:
		return "Unknown"
	}
}

// traceQuoted double-quotes s without escaping, matching pgproto3's
// traceDoubleQuotedString.
func traceQuoted(s string) string {
	return `"` + s + `"`
}
