package protocol

import "pgwire/wire"

// AppendQuery appends a Query message ('Q'): the simple-query protocol
// entry point. sql is not scanned for embedded NULs — whatever bytes the
// caller supplied are sent verbatim plus the mandatory terminator.
func AppendQuery(dst []byte, sql string) []byte {
	body := wire.AppendCString(nil, sql)
	return wire.AppendFrame(dst, ClientCodeQuery, body)
}

// AppendTerminate appends a Terminate message ('X'): a graceful goodbye,
// always exactly 4 length bytes and no body.
func AppendTerminate(dst []byte) []byte {
	return wire.AppendFrame(dst, ClientCodeTerminate, nil)
}

// AppendSync appends a Sync message ('S'), always exactly 4 length bytes
// and no body.
func AppendSync(dst []byte) []byte {
	return wire.AppendFrame(dst, ClientCodeSync, nil)
}

// AppendFlush appends a Flush message ('H'), always exactly 4 length bytes
// and no body.
func AppendFlush(dst []byte) []byte {
	return wire.AppendFrame(dst, ClientCodeFlush, nil)
}

// AppendCopyData appends a CopyData message ('d') carrying raw bytes,
// used both to stream COPY IN data and, on the backend side, COPY OUT data.
func AppendCopyData(dst []byte, data []byte) []byte {
	return wire.AppendFrame(dst, ClientCodeCopyData, data)
}

// AppendCopyDone appends a CopyDone message ('c'): the client's signal that
// it has no more COPY IN data to stream.
func AppendCopyDone(dst []byte) []byte {
	return wire.AppendFrame(dst, ClientCodeCopyDone, nil)
}

// AppendCopyFail appends a CopyFail message ('f'): the client's signal that
// it cannot continue supplying COPY IN data, with a human-readable reason.
func AppendCopyFail(dst []byte, reason string) []byte {
	body := wire.AppendCString(nil, reason)
	return wire.AppendFrame(dst, ClientCodeCopyFail, body)
}
