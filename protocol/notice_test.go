package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pgwire/wire"
)

func buildNoticeFields(pairs [][2]string) []byte {
	var body []byte
	for _, p := range pairs {
		body = append(body, p[0][0])
		body = append(body, []byte(p[1])...)
		body = append(body, 0)
	}
	return append(body, 0)
}

func TestNoticeResponseDecode(t *testing.T) {
	body := buildNoticeFields([][2]string{{"S", "NOTICE"}, {"M", "hint"}})

	var nr NoticeResponse
	require.NoError(t, nr.Decode(body))
	require.Equal(t, "NOTICE", nr.Severity)
	require.Equal(t, "hint", nr.Message)
	require.Equal(t, "NOTICE: hint", nr.String())
}

func TestErrorResponseDecode(t *testing.T) {
	body := buildNoticeFields([][2]string{{"S", "ERROR"}, {"M", "syntax error"}})

	var er ErrorResponse
	require.NoError(t, er.Decode(body))
	require.Equal(t, "ERROR: syntax error", er.String())
}

func TestNoticeResponseIgnoresUnknownFields(t *testing.T) {
	body := buildNoticeFields([][2]string{{"S", "ERROR"}, {"D", "some detail"}, {"M", "boom"}})

	var er ErrorResponse
	require.NoError(t, er.Decode(body))
	require.Equal(t, "ERROR: boom", er.String())
}

func TestNoticeResponseMissingTerminatorFails(t *testing.T) {
	body := []byte{'S'}
	body = append(body, []byte("ERROR")...)

	var nr NoticeResponse
	require.Error(t, nr.Decode(body))
}

func TestNotificationResponseDecode(t *testing.T) {
	body := wire.AppendUint32(nil, 42)
	body = wire.AppendCString(body, "mychannel")
	body = wire.AppendCString(body, "mypayload")

	var n NotificationResponse
	require.NoError(t, n.Decode(body))
	require.EqualValues(t, 42, n.ProcessID)
	require.Equal(t, "mychannel", n.Channel)
	require.Equal(t, "mypayload", n.Payload)
}
