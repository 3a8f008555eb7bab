package protocol

import "pgwire/wire"

// AppendStartupMessage appends a Startup message: the first message a
// client sends. Unlike every other client message it has no leading type
// code, only a length, followed by the protocol version and a run of
// key\0value\0 pairs terminated by a lone \0.
//
// If database is empty, user is substituted for it, matching libpq's
// behavior when no database name is given.
func AppendStartupMessage(dst []byte, user, database string) []byte {
	if database == "" {
		database = user
	}

	body := wire.AppendUint32(nil, protocolVersion3)
	body = wire.AppendCString(body, "user")
	body = wire.AppendCString(body, user)
	body = wire.AppendCString(body, "database")
	body = wire.AppendCString(body, database)
	body = append(body, 0)

	dst = wire.AppendInt32(dst, int32(4+len(body)))
	return append(dst, body...)
}
