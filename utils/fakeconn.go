package utils

import (
	"bytes"
	"io"
	"net"
	"strings"
	"time"
)

// FakeConn es una conexion en memoria: lee de Input y guarda lo escrito en Buffer.
type FakeConn struct {
	Input  io.Reader
	Buffer *bytes.Buffer
	Closed bool
}

func NewFakeConn(input string) *FakeConn {
	return &FakeConn{
		Input:  strings.NewReader(input),
		Buffer: &bytes.Buffer{},
	}
}

func (f *FakeConn) Read(b []byte) (n int, err error) {
	if f.Input == nil {
		return 0, io.EOF
	}
	return f.Input.Read(b)
}

func (f *FakeConn) Write(p []byte) (n int, err error) {
	return f.Buffer.Write(p)
}

func (f *FakeConn) Close() error {
	f.Closed = true
	return nil
}

// Implementa otros métodos necesarios de net.Conn
func (f *FakeConn) LocalAddr() net.Addr                { return nil }
func (f *FakeConn) RemoteAddr() net.Addr               { return nil }
func (f *FakeConn) SetDeadline(t time.Time) error      { return nil }
func (f *FakeConn) SetReadDeadline(t time.Time) error  { return nil }
func (f *FakeConn) SetWriteDeadline(t time.Time) error { return nil }
