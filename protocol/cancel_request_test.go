package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendCancelRequest(t *testing.T) {
	buf := AppendCancelRequest(nil, 8864, 0xD90CAEDB)

	// P6: byte-identical to [00 00 00 10][04 D2 16 2E][pid][secret_key].
	expected := []byte{
		0x00, 0x00, 0x00, 0x10, // length: 16
		0x04, 0xD2, 0x16, 0x2E, // cancelRequestCode: 80877102
		0x00, 0x00, 0x22, 0xA0, // ProcessID: 8864
		0xD9, 0x0C, 0xAE, 0xDB, // SecretKey
	}

	require.Equal(t, expected, buf)
}

func TestAppendCancelRequestAppendsToDst(t *testing.T) {
	dst := []byte{0xFF}
	buf := AppendCancelRequest(dst, 1, 2)
	require.Equal(t, byte(0xFF), buf[0])
	require.Len(t, buf, 17)
}
