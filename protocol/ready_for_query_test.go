package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadyForQueryDecode(t *testing.T) {
	for _, status := range []byte{TxStatusIdle, TxStatusActive, TxStatusError} {
		var rfq ReadyForQuery
		require.NoError(t, rfq.Decode([]byte{status}))
		require.Equal(t, status, rfq.TxStatus)
	}
}

func TestReadyForQueryDecodeRejectsUnknownStatus(t *testing.T) {
	var rfq ReadyForQuery
	require.Error(t, rfq.Decode([]byte{'?'}))
}

func TestReadyForQueryDecodeRejectsWrongLength(t *testing.T) {
	var rfq ReadyForQuery
	require.Error(t, rfq.Decode([]byte{}))
	require.Error(t, rfq.Decode([]byte{'I', 'I'}))
}
