package protocol

import "pgwire/pgerr"

// CopyOutResponse is the 'H' backend message that begins a COPY OUT
// sub-protocol exchange. OverallFormat is 0 for text, 1 for binary.
type CopyOutResponse struct {
	OverallFormat     byte
	ColumnFormatCodes []uint16
}

// Decode implements the message decoder contract for 'H'.
func (dst *CopyOutResponse) Decode(payload []byte) error {
	format, columnCodes, err := decodeCopyResponse(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "CopyOutResponse: " + err.Error()}
	}
	dst.OverallFormat = format
	dst.ColumnFormatCodes = columnCodes
	return nil
}
