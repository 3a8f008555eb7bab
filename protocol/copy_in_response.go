package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// CopyInResponse is the 'G' backend message that begins a COPY IN
// sub-protocol exchange. OverallFormat is 0 for text, 1 for binary.
type CopyInResponse struct {
	OverallFormat     byte
	ColumnFormatCodes []uint16
}

// Decode implements the message decoder contract for 'G'.
func (dst *CopyInResponse) Decode(payload []byte) error {
	format, columnCodes, err := decodeCopyResponse(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "CopyInResponse: " + err.Error()}
	}
	dst.OverallFormat = format
	dst.ColumnFormatCodes = columnCodes
	return nil
}

// decodeCopyResponse parses the body shared by CopyInResponse and
// CopyOutResponse: a format byte, a column count, then that many 16-bit
// format codes.
func decodeCopyResponse(payload []byte) (byte, []uint16, error) {
	if len(payload) < 3 {
		return 0, nil, &wire.ErrShortBuffer{Want: 3, Got: len(payload)}
	}
	format := payload[0]
	count, rest, err := wire.ReadUint16(payload[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(rest) != int(count)*2 {
		return 0, nil, &wire.ErrShortBuffer{Want: int(count) * 2, Got: len(rest)}
	}
	codes := make([]uint16, count)
	for i := range codes {
		codes[i], rest, err = wire.ReadUint16(rest)
		if err != nil {
			return 0, nil, err
		}
	}
	return format, codes, nil
}
