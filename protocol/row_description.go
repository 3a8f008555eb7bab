package protocol

import (
	"pgwire/pgerr"
	"pgwire/wire"
)

// Format codes carried in a FieldDescription and a DataRow column.
const (
	TextFormat   = 0
	BinaryFormat = 1
)

// FieldDescription is one column's metadata as reported by RowDescription.
// It is immutable once decoded; the field map is replaced wholesale, never
// mutated in place.
type FieldDescription struct {
	Name         string
	TableOID     uint32
	ColumnNumber uint16
	DataTypeOID  uint32
	TypeSize     int16 // negative means variable-length
	TypeModifier int32
	Format       int16 // 0 = text, 1 = binary
}

// RowDescription is the 'T' backend message: an ordered list of column
// descriptors for every row that follows until the next RowDescription.
type RowDescription struct {
	Fields []FieldDescription
}

// Decode implements the message decoder contract for 'T'.
func (dst *RowDescription) Decode(payload []byte) error {
	count, rest, err := wire.ReadUint16(payload)
	if err != nil {
		return &pgerr.MalformedFrameError{Detail: "RowDescription: " + err.Error()}
	}

	fields := make([]FieldDescription, count)
	for i := range fields {
		var fd FieldDescription
		fd.Name, rest, err = wire.ReadCString(rest)
		if err != nil {
			return &pgerr.MalformedFrameError{Detail: "RowDescription: field name: " + err.Error()}
		}

		fixed, remainder, err := wire.ReadBytes(rest, 18)
		if err != nil {
			return &pgerr.MalformedFrameError{Detail: "RowDescription: field descriptor: " + err.Error()}
		}
		rest = remainder

		fd.TableOID, fixed, _ = wire.ReadUint32(fixed)
		var colNum int16
		colNum, fixed, _ = wire.ReadInt16(fixed)
		fd.ColumnNumber = uint16(colNum)
		fd.DataTypeOID, fixed, _ = wire.ReadUint32(fixed)
		fd.TypeSize, fixed, _ = wire.ReadInt16(fixed)
		fd.TypeModifier, fixed, _ = wire.ReadInt32(fixed)
		fd.Format, _, _ = wire.ReadInt16(fixed)

		fields[i] = fd
	}

	if len(rest) != 0 {
		return &pgerr.MalformedFrameError{Detail: "RowDescription: trailing bytes after last field"}
	}

	dst.Fields = fields
	return nil
}
