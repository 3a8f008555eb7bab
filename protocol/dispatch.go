package protocol

import "pgwire/pgerr"

// Message is any backend message this driver understands.
type Message interface {
	// Decode parses payload — the frame body with code and length already
	// stripped — into the receiver.
	Decode(payload []byte) error
}

// Decode constructs the Message value for code and decodes payload into it.
// It is the pure, stateless half of the reply dispatcher (§4.4): given one
// framed server message it returns a typed value or a
// *pgerr.UnknownCodeError. Everything stateful — updating the session,
// pushing to queues — happens in package session once Decode has returned.
func Decode(code byte, payload []byte) (Message, error) {
	msg, ok := newMessage(code)
	if !ok {
		return nil, &pgerr.UnknownCodeError{Code: code}
	}
	if err := msg.Decode(payload); err != nil {
		return nil, err
	}
	return msg, nil
}

func newMessage(code byte) (Message, bool) {
	switch code {
	case CodeAuthentication:
		return &Authentication{}, true
	case CodeBackendKeyData:
		return &BackendKeyData{}, true
	case CodeParameterStatus:
		return &ParameterStatus{}, true
	case CodeRowDescription:
		return &RowDescription{}, true
	case CodeDataRow:
		return &DataRow{}, true
	case CodeCommandComplete:
		return &CommandComplete{}, true
	case CodeEmptyQueryResponse:
		return &EmptyQueryResponse{}, true
	case CodeNoticeResponse:
		return &NoticeResponse{}, true
	case CodeErrorResponse:
		return &ErrorResponse{}, true
	case CodeNotificationResp:
		return &NotificationResponse{}, true
	case CodeCopyInResponse:
		return &CopyInResponse{}, true
	case CodeCopyOutResponse:
		return &CopyOutResponse{}, true
	case CodeCopyData:
		return &CopyData{}, true
	case CodeCopyDone:
		return &CopyDone{}, true
	case CodeReadyForQuery:
		return &ReadyForQuery{}, true
	default:
		return nil, false
	}
}
