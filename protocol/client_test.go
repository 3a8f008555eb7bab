package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pgwire/wire"
)

func TestAppendQuery(t *testing.T) {
	buf := AppendQuery(nil, "select 1")

	code, payload := decodeOneFrame(t, buf)
	require.Equal(t, byte(ClientCodeQuery), code)
	require.Equal(t, "select 1\x00", string(payload))
}

func TestAppendTerminate(t *testing.T) {
	buf := AppendTerminate(nil)
	require.Equal(t, []byte{ClientCodeTerminate, 0, 0, 0, 4}, buf)
}

func TestAppendSync(t *testing.T) {
	buf := AppendSync(nil)
	require.Equal(t, []byte{ClientCodeSync, 0, 0, 0, 4}, buf)
}

func TestAppendFlush(t *testing.T) {
	buf := AppendFlush(nil)
	require.Equal(t, []byte{ClientCodeFlush, 0, 0, 0, 4}, buf)
}

func TestAppendCopyData(t *testing.T) {
	buf := AppendCopyData(nil, []byte("abc"))
	code, payload := decodeOneFrame(t, buf)
	require.Equal(t, byte(ClientCodeCopyData), code)
	require.Equal(t, "abc", string(payload))
}

func TestAppendCopyDone(t *testing.T) {
	buf := AppendCopyDone(nil)
	require.Equal(t, []byte{ClientCodeCopyDone, 0, 0, 0, 4}, buf)
}

func TestAppendCopyFail(t *testing.T) {
	buf := AppendCopyFail(nil, "no more data")
	code, payload := decodeOneFrame(t, buf)
	require.Equal(t, byte(ClientCodeCopyFail), code)
	require.Equal(t, "no more data\x00", string(payload))
}

func TestAppendQueryAppendsToDst(t *testing.T) {
	dst := []byte("prefix")
	buf := AppendQuery(dst, "x")
	require.Equal(t, "prefix", string(buf[:6]))
}

// decodeOneFrame parses a single self-framed client message out of buf for
// assertions, without going through wire.ReadFrame's ChunkReader.
func decodeOneFrame(t *testing.T, buf []byte) (byte, []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(buf), 5)
	code := buf[0]
	length, _, err := wire.ReadUint32(buf[1:5])
	require.NoError(t, err)
	payload := buf[5:]
	require.Len(t, payload, int(length)-4)
	return code, payload
}
