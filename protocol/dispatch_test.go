package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pgwire/pgerr"
	"pgwire/wire"
)

func TestDecodeDispatchesKnownCodes(t *testing.T) {
	msg, err := Decode(CodeAuthentication, wire.AppendUint32(nil, 0))
	require.NoError(t, err)

	auth, ok := msg.(*Authentication)
	require.True(t, ok)
	require.EqualValues(t, 0, auth.Mode)
}

func TestDecodeUnknownCode(t *testing.T) {
	_, err := Decode('?', nil)

	var uce *pgerr.UnknownCodeError
	require.ErrorAs(t, err, &uce)
	require.Equal(t, byte('?'), uce.Code)
}

func TestDecodePropagatesDecodeError(t *testing.T) {
	_, err := Decode(CodeReadyForQuery, []byte{'?'})
	require.Error(t, err)
}

func TestDecodeAllKnownCodesConstructDistinctTypes(t *testing.T) {
	codes := []byte{
		CodeAuthentication, CodeBackendKeyData, CodeParameterStatus,
		CodeRowDescription, CodeDataRow, CodeCommandComplete,
		CodeEmptyQueryResponse, CodeNoticeResponse, CodeErrorResponse,
		CodeNotificationResp, CodeCopyInResponse, CodeCopyOutResponse,
		CodeCopyData, CodeCopyDone, CodeReadyForQuery,
	}
	for _, code := range codes {
		_, ok := newMessage(code)
		require.Truef(t, ok, "code %q should be recognized", string(code))
	}
}
