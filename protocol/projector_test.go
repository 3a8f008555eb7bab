package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pgwire/pgerr"
	"pgwire/wire"
)

func encodeDataRow(t *testing.T, cols [][]byte) []byte {
	t.Helper()
	body := wire.AppendInt16(nil, int16(len(cols)))
	for _, c := range cols {
		if c == nil {
			body = wire.AppendInt32(body, -1)
			continue
		}
		body = wire.AppendInt32(body, int32(len(c)))
		body = append(body, c...)
	}
	return body
}

func TestProjectRowQuery(t *testing.T) {
	fields := []FieldDescription{
		{Name: "id", Format: TextFormat},
		{Name: "name", Format: TextFormat},
	}
	payload := encodeDataRow(t, [][]byte{[]byte("1"), []byte("alice")})

	out, err := ProjectRow(BufferFormatQuery, payload, fields)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "alice"}, out)
}

func TestProjectRowQueryNull(t *testing.T) {
	fields := []FieldDescription{{Name: "x", Format: TextFormat}}
	payload := encodeDataRow(t, [][]byte{nil})

	out, err := ProjectRow(BufferFormatQuery, payload, fields)
	require.NoError(t, err)
	require.Equal(t, []string{""}, out)
}

func TestProjectRowQueryBinaryPlaceholder(t *testing.T) {
	fields := []FieldDescription{{Name: "x", Format: BinaryFormat}}
	payload := encodeDataRow(t, [][]byte{{0x00, 0x01, 0x02}})

	out, err := ProjectRow(BufferFormatQuery, payload, fields)
	require.NoError(t, err)
	require.Equal(t, []string{"<binary>"}, out)
}

func TestProjectRowQueryColumnCountMismatch(t *testing.T) {
	fields := []FieldDescription{{Name: "x", Format: TextFormat}}
	payload := encodeDataRow(t, [][]byte{[]byte("a"), []byte("b")})

	_, err := ProjectRow(BufferFormatQuery, payload, fields)
	require.Error(t, err)
}

func TestProjectRowCopyText(t *testing.T) {
	out, err := ProjectRow(BufferFormatCopyText, []byte("a\tb\n"), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a\tb\n"}, out)
}

func TestProjectRowCopyBinaryFiltersNonPrintable(t *testing.T) {
	out, err := ProjectRow(BufferFormatCopyBinary, []byte{'a', 0x00, 'b'}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a.b"}, out)
}

func TestProjectRowNoBufferFormat(t *testing.T) {
	_, err := ProjectRow(BufferFormatNone, nil, nil)
	require.ErrorIs(t, err, pgerr.ErrNoBufferFormat)
}
