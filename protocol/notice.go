package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// Notice field type bytes the specification cares about; PostgreSQL defines
// several more (Detail, Hint, Position, ...) but only Severity and Message
// feed the formatted notification string.
const (
	noticeFieldSeverity = 'S'
	noticeFieldMessage  = 'M'
)

// NoticeResponse is the 'N' backend message: informational, does not abort
// the current query.
type NoticeResponse struct {
	pgerr.Notice
}

// Decode implements the message decoder contract for 'N'.
func (dst *NoticeResponse) Decode(payload []byte) error {
	n, err := parseNoticeFields(payload)
	if err != nil {
		return err
	}
	dst.Notice = n
	return nil
}

// ErrorResponse is the 'E' backend message. It shares NoticeResponse's wire
// format exactly; the difference is purely semantic (it terminates the
// current query, not the session) and is handled by the session state
// machine, not by decoding.
type ErrorResponse struct {
	pgerr.Notice
}

// Decode implements the message decoder contract for 'E'.
func (dst *ErrorResponse) Decode(payload []byte) error {
	n, err := parseNoticeFields(payload)
	if err != nil {
		return err
	}
	dst.Notice = n
	return nil
}

// NotificationResponse is the 'A' backend message: an asynchronous
// LISTEN/NOTIFY delivery. It does not share the S/M field-list format of
// Notice/Error; it carries the notifying backend's pid, a channel name, and
// a payload, each fixed or NUL-terminated.
type NotificationResponse struct {
	ProcessID uint32
	Channel   string
	Payload   string
}

// Decode implements the message decoder contract for 'A'.
func (dst *NotificationResponse) Decode(payload []byte) error {
	pid, rest, err := wire.ReadUint32(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "NotificationResponse: " + err.Error()}
	}
	channel, rest, err := wire.ReadCString(rest)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "NotificationResponse: channel: " + err.Error()}
	}
	payloadStr, _, err := wire.ReadCString(rest)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "NotificationResponse: payload: " + err.Error()}
	}
	dst.ProcessID = pid
	dst.Channel = channel
	dst.Payload = payloadStr
	return nil
}

// parseNoticeFields decodes the field-list body shared by NoticeResponse
// and ErrorResponse: a sequence of [type byte][value]\0 pairs terminated by
// a lone \0. Trailing bytes after the terminator are tolerated per the
// specification.
func parseNoticeFields(payload []byte) (pgerr.Notice, error) {
	fields := make(map[byte]string)
	rest := payload

	for {
		if len(rest) == 0 {
			return pgerr.Notice{}, &pgerr.MalformedFrameError{Detail: "notice: missing terminator"}
		}
		fieldType := rest[0]
		rest = rest[1:]
		if fieldType == 0 {
			break
		}
		value, remainder, err := wire.ReadCString(rest)
		if err != nil {
			return pgerr.Notice{}, &pgerr.MalformedFrameError{Detail: "notice: " + err.Error()}
		}
		fields[fieldType] = value
		rest = remainder
	}

	return pgerr.Notice{
		Severity: fields[noticeFieldSeverity],
		Message:  fields[noticeFieldMessage],
		Fields:   fields,
	}, nil
}
