package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ErrShortBuffer is returned by the Read* functions when buf does not hold
// enough bytes to satisfy the read.
type ErrShortBuffer struct {
	Want int
	Got  int
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("wire: need %d bytes, have %d", e.Want, e.Got)
}

// AppendUint16 appends n to dst in network byte order.
func AppendUint16(dst []byte, n uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, n)
}

// AppendInt16 appends n to dst in network byte order.
func AppendInt16(dst []byte, n int16) []byte {
	return AppendUint16(dst, uint16(n))
}

// AppendUint32 appends n to dst in network byte order.
func AppendUint32(dst []byte, n uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, n)
}

// AppendInt32 appends n to dst in network byte order.
func AppendInt32(dst []byte, n int32) []byte {
	return AppendUint32(dst, uint32(n))
}

// AppendCString appends s to dst followed by a single NUL byte. s is not
// scanned for embedded NULs; the caller is trusted (see protocol.AppendQuery).
func AppendCString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	return append(dst, 0)
}

// ReadUint16 reads a big-endian uint16 from the front of buf, returning the
// value and the remaining bytes.
func ReadUint16(buf []byte) (uint16, []byte, error) {
	if len(buf) < 2 {
		return 0, buf, &ErrShortBuffer{Want: 2, Got: len(buf)}
	}
	return binary.BigEndian.Uint16(buf), buf[2:], nil
}

// ReadInt16 reads a big-endian int16 from the front of buf.
func ReadInt16(buf []byte) (int16, []byte, error) {
	n, rest, err := ReadUint16(buf)
	return int16(n), rest, err
}

// ReadUint32 reads a big-endian uint32 from the front of buf.
func ReadUint32(buf []byte) (uint32, []byte, error) {
	if len(buf) < 4 {
		return 0, buf, &ErrShortBuffer{Want: 4, Got: len(buf)}
	}
	return binary.BigEndian.Uint32(buf), buf[4:], nil
}

// ReadInt32 reads a big-endian int32 from the front of buf.
func ReadInt32(buf []byte) (int32, []byte, error) {
	n, rest, err := ReadUint32(buf)
	return int32(n), rest, err
}

// ReadCString reads bytes up to (and consuming) the next NUL byte, returning
// the string without the terminator and the remaining bytes.
func ReadCString(buf []byte) (string, []byte, error) {
	idx := bytes.IndexByte(buf, 0)
	if idx < 0 {
		return "", buf, fmt.Errorf("wire: unterminated string in %d byte buffer", len(buf))
	}
	return string(buf[:idx]), buf[idx+1:], nil
}

// ReadBytes consumes and returns the first n bytes of buf along with what
// remains.
func ReadBytes(buf []byte, n int) ([]byte, []byte, error) {
	if len(buf) < n {
		return nil, buf, &ErrShortBuffer{Want: n, Got: len(buf)}
	}
	return buf[:n:n], buf[n:], nil
}
