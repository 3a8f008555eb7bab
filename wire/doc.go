// Package wire is a low-level toolkit for the PostgreSQL frontend/backend
// wire protocol version 3.0.
//
// It reads and writes the big-endian integers and null-terminated strings
// the protocol is built from, and frames messages off an underlying byte
// stream. It knows nothing about what any particular message means; that
// belongs to package protocol.
package wire
