package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// BufferFormat identifies what shape the buffers currently sitting in the
// row queue have, which in turn decides how ProjectRow interprets them.
type BufferFormat int

const (
	// BufferFormatNone means no RowDescription, CopyInResponse, or
	// CopyOutResponse has been seen yet; projection is not possible.
	BufferFormatNone BufferFormat = iota
	// BufferFormatQuery means each row is laid out per the current field
	// map, as produced by a simple query's RowDescription/DataRow pair.
	BufferFormatQuery
	// BufferFormatCopyText means each row is one opaque COPY text line.
	BufferFormatCopyText
	// BufferFormatCopyBinary means each row is an opaque COPY binary chunk.
	BufferFormatCopyBinary
)

func (f BufferFormat) String() string {
	switch f {
	case BufferFormatNone:
		return "none"
	case BufferFormatQuery:
		return "query"
	case BufferFormatCopyText:
		return "copy_text"
	case BufferFormatCopyBinary:
		return "copy_binary"
	default:
		return "unknown"
	}
}

// binaryPlaceholder is what ProjectRow renders in place of a binary-format
// query column's raw bytes. Binary columns beyond this marker are not
// decoded by this driver (see the specification's non-goals); every binary
// query column gets this same placeholder, while a whole copy_binary buffer
// is rendered through printableFilter instead (design note 9d).
const binaryPlaceholder = "<binary>"

// ProjectRow splits a raw row buffer into a caller-facing list of strings
// according to format. fields is only consulted when format is
// BufferFormatQuery.
func ProjectRow(format BufferFormat, payload []byte, fields []FieldDescription) ([]string, error) {
	switch format {
	case BufferFormatQuery:
		return projectQueryRow(payload, fields)
	case BufferFormatCopyText:
		return []string{string(payload)}, nil
	case BufferFormatCopyBinary:
		return []string{printableFilter(payload)}, nil
	default:
		return nil, pgerr.ErrNoBufferFormat
	}
}

// projectQueryRow implements the query buffer format layout: n(i16) then n
// columns of size(i32) + size bytes, size == -1 meaning SQL NULL.
func projectQueryRow(payload []byte, fields []FieldDescription) ([]string, error) {
	count, rest, err := wire.ReadInt16(payload)
	if err != nil {
		return nil, &pgerr.MalformedFrameError{Detail: "DataRow: " + err.Error()}
	}
	if int(count) != len(fields) {
		return nil, &pgerr.MalformedFrameError{Detail: "DataRow: column count does not match field map"}
	}

	out := make([]string, count)
	for i := 0; i < int(count); i++ {
		size, remainder, err := wire.ReadInt32(rest)
		if err != nil {
			return nil, &pgerr.MalformedFrameError{Detail: "DataRow: " + err.Error()}
		}
		rest = remainder

		if size == -1 {
			out[i] = ""
			continue
		}

		var value []byte
		value, rest, err = wire.ReadBytes(rest, int(size))
		if err != nil {
			return nil, &pgerr.MalformedFrameError{Detail: "DataRow: " + err.Error()}
		}

		if fields[i].Format == BinaryFormat {
			out[i] = binaryPlaceholder
		} else {
			out[i] = string(value)
		}
	}

	if len(rest) != 0 {
		return nil, &pgerr.MalformedFrameError{Detail: "DataRow: trailing bytes after last column"}
	}

	return out, nil
}

// printableFilter renders raw bytes as a string, replacing any byte outside
// the printable ASCII range with '.', the same policy libpq's PQtrace uses
// for binary payloads it must still show a human a line of.
func printableFilter(raw []byte) string {
	out := make([]byte, len(raw))
	for i, b := range raw {
		if b >= 0x20 && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
