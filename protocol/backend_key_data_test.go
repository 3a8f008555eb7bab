package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendKeyDataDecode(t *testing.T) {
	src := []byte{
		0x00, 0x00, 0x22, 0xA0, // ProcessID: 8864
		0xD9, 0x0C, 0xAE, 0xDB, // SecretKey
	}

	var msg BackendKeyData
	require.NoError(t, msg.Decode(src))
	require.Equal(t, uint32(8864), msg.ProcessID)
	require.Equal(t, uint32(0xD90CAEDB), msg.SecretKey)
}

func TestBackendKeyDataDecodeTooShort(t *testing.T) {
	var msg BackendKeyData
	require.Error(t, msg.Decode([]byte{0, 0, 0}))
}
