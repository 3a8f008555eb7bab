package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedFrame is returned when a message header declares an
// impossible length.
var ErrMalformedFrame = errors.New("wire: malformed frame")

// Frame is one length-prefixed server message: a one byte type code and its
// payload, with the framing bytes already stripped.
type Frame struct {
	Code    byte
	Payload []byte
}

// ReadFrame reads one server message off cr: a 1 byte code, a 4 byte
// big-endian length inclusive of itself but exclusive of the code, and
// exactly length-4 bytes of payload.
//
// The returned Payload aliases the ChunkReader's internal buffer and is only
// valid until the next call to ReadFrame.
func ReadFrame(cr *ChunkReader) (Frame, error) {
	header, err := cr.Next(5)
	if err != nil {
		if err == io.EOF {
			return Frame{}, io.ErrUnexpectedEOF
		}
		return Frame{}, err
	}

	code := header[0]
	length := binary.BigEndian.Uint32(header[1:])
	if length < 4 {
		return Frame{}, fmt.Errorf("%w: length %d", ErrMalformedFrame, length)
	}

	bodyLen := int(length - 4)
	payload, err := cr.Next(bodyLen)
	if err != nil {
		if err == io.EOF {
			return Frame{}, io.ErrUnexpectedEOF
		}
		return Frame{}, err
	}

	return Frame{Code: code, Payload: payload}, nil
}

// AppendFrame appends a self-framed message (a 1 byte code, a 4 byte
// big-endian length, then body) to dst and returns it. It is the inverse of
// ReadFrame and is used by every client message builder in package
// protocol.
func AppendFrame(dst []byte, code byte, body []byte) []byte {
	dst = append(dst, code)
	dst = AppendUint32(dst, uint32(4+len(body)))
	return append(dst, body...)
}
