package main

import (
	"io"
	"strings"
)

const defaultReadBufferSize = 4096

// Consecutive empty reads tolerated before giving up on the stream.
const maxEmptyReads = 100

type inputStream interface {
	Read(buff []byte) (n int, err error)
}

// charSource is what a scanner needs from its input: one character at a
// time and, for line-oriented callers, a whole line.
type charSource interface {
	read() (byte, error)
	readLine() (string, error)
}

type source struct {
	fd   inputStream
	buff []byte
	pos  int
	size int
	in   ioData
	err  error
}

func newBufferedSource(fd inputStream, buffSize int) *source {
	if buffSize < 1 {
		buffSize = defaultReadBufferSize
	}
	src := new(source)
	src.fd = fd
	src.buff = make([]byte, buffSize)
	src.pos = 0
	src.size = 0
	return src
}

func (src *source) read() (byte, error) {
	if !src.hasUnreadInput() {
		if _, err := src.loadData(); err != nil {
			return 0, err
		}
	}
	return src.removeByte(), nil
}

// readLine returns the next line without its terminator ("\n" or "\r\n").
// A final line without terminator is returned as is; io.EOF follows.
func (src *source) readLine() (string, error) {
	var line strings.Builder
	read := false
	for {
		ch, err := src.read()
		if err == io.EOF && read {
			return trimCarryReturn(line.String()), nil
		}
		if err != nil {
			return "", err
		}
		read = true
		if ch == lineFeed {
			return trimCarryReturn(line.String()), nil
		}
		line.WriteByte(ch)
	}
}

func trimCarryReturn(line string) string {
	return strings.TrimSuffix(line, "\r")
}

func (src *source) removeByte() byte {
	b := src.buff[src.pos]
	src.pos += 1
	return b
}

func (src *source) hasUnreadInput() bool {
	return src.size > 0 && src.pos < src.size
}

// loadData refills the buffer. Bytes returned together with an error are
// kept and the error is reported by the following load.
func (src *source) loadData() (int, error) {
	if src.err != nil {
		return 0, src.err
	}
	for i := 0; i < maxEmptyReads; i++ {
		nbytes, err := src.fd.Read(src.buff)
		src.in.record(nbytes)
		if nbytes > 0 {
			src.size = nbytes
			src.pos = 0
			src.err = err
			return nbytes, nil
		}
		if err != nil {
			src.err = err
			return 0, err
		}
	}
	src.err = io.ErrNoProgress
	return 0, src.err
}

func (src *source) numOfReads() int {
	return src.in.getCalls()
}

func (src *source) bytesIn() int {
	return src.in.getByteCount()
}
