// Package transport supplies the abstract blocking byte stream a Session
// runs the wire protocol over, and the two endpoint shapes named in the
// driving specification: a local domain socket and a TCP connection.
// Grounded on the teacher's pgconn.ConnConfig/NetworkAddress split between
// dialing and address resolution.
package transport

import (
	"fmt"
	"net"
	"path/filepath"
	"time"
)

// Transport is a blocking byte stream: connect, read exactly N bytes, write
// all of a buffer, close. Session owns exactly one Transport at a time and
// never shares it across goroutines.
type Transport interface {
	// ReadFull reads len(buf) bytes into buf, blocking until it has them
	// all or an error (including io.EOF/io.ErrUnexpectedEOF) occurs.
	ReadFull(buf []byte) (int, error)

	// WriteAll writes every byte of buf, blocking until done or an error
	// occurs.
	WriteAll(buf []byte) error

	// Close releases the underlying connection. Idempotent.
	Close() error
}

// connTransport adapts a net.Conn to Transport.
type connTransport struct {
	conn net.Conn
}

// NewConnTransport wraps an already-established net.Conn.
func NewConnTransport(conn net.Conn) Transport {
	return &connTransport{conn: conn}
}

func (t *connTransport) ReadFull(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := t.conn.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (t *connTransport) WriteAll(buf []byte) error {
	for len(buf) > 0 {
		n, err := t.conn.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

func (t *connTransport) Close() error {
	return t.conn.Close()
}

// Default endpoint parameters, matching §6 of the driving specification
// exactly.
const (
	DefaultSocketDir    = "/private/tmp"
	DefaultSocketPrefix = ".s.PGSQL."
	DefaultPort         = "5432"
	DefaultHost         = "localhost"
	DefaultService      = "postgresql"
)

// Config names the two endpoint shapes a Session may connect to, plus the
// startup parameters (user, database) it needs once connected. Mirrors the
// teacher's ConnConfig, trimmed to what the specification's transport layer
// actually uses: no TLS, no DSN/URL parsing, no environment lookup — those
// belong to the extended configuration surface this driver does not
// implement (spec.md's Out of scope: SSL negotiation).
type Config struct {
	User     string
	Database string

	// Network is "unix" or "tcp". Set by ResolveLocal/ResolveTCP.
	Network string
	Address string

	// DialTimeout bounds the initial connection attempt. Zero means no
	// timeout.
	DialTimeout time.Duration
}

// ResolveLocal builds a Config addressing a local domain socket at
// dir/prefix+port, applying the specification's defaults for any argument
// left empty.
func ResolveLocal(user, database, dir, prefix, port string) Config {
	if dir == "" {
		dir = DefaultSocketDir
	}
	if prefix == "" {
		prefix = DefaultSocketPrefix
	}
	if port == "" {
		port = DefaultPort
	}
	return Config{
		User:     user,
		Database: database,
		Network:  "unix",
		Address:  filepath.Join(dir, prefix+port),
	}
}

// ResolveTCP builds a Config addressing host:service, applying the
// specification's defaults for any argument left empty.
func ResolveTCP(user, database, host, service string) Config {
	if host == "" {
		host = DefaultHost
	}
	if service == "" {
		service = DefaultService
	}
	return Config{
		User:     user,
		Database: database,
		Network:  "tcp",
		Address:  net.JoinHostPort(host, service),
	}
}

// Dial connects to cfg's endpoint and returns a Transport.
func Dial(cfg Config) (Transport, error) {
	dialer := net.Dialer{Timeout: cfg.DialTimeout}
	conn, err := dialer.Dial(cfg.Network, cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s %s: %w", cfg.Network, cfg.Address, err)
	}
	return NewConnTransport(conn), nil
}
