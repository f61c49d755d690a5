package main

import (
	"strconv"
)

const defaultFlushThreshold = 4096

type outputStream interface {
	Write(b []byte) (n int, err error)
}

type sink struct {
	output    outputStream
	buffer    []byte
	threshold int
}

func newSink(output outputStream, writeThreshold int) *sink {
	if writeThreshold < 1 {
		writeThreshold = defaultFlushThreshold
	}
	return &sink{
		output:    output,
		threshold: writeThreshold,
		buffer:    make([]byte, 0, writeThreshold),
	}
}

func (s *sink) writeLine(str string) {
	s.buffer = append(s.buffer, str...)
	s.buffer = append(s.buffer, lineFeed)
}

func (s *sink) writeInt(n int64) {
	s.buffer = strconv.AppendInt(s.buffer, n, decimalRadix)
	s.buffer = append(s.buffer, lineFeed)
}

// writeCount writes "<count> <token>" lines.
func (s *sink) writeCount(count int, token string) {
	s.buffer = strconv.AppendInt(s.buffer, int64(count), decimalRadix)
	s.buffer = append(s.buffer, space)
	s.writeLine(token)
}

// flushIfFull flushes only once the buffered output reaches the threshold.
func (s *sink) flushIfFull() (*ioData, error) {
	if !s.full() {
		return newIoData(), nil
	}
	return s.flush()
}

func (s *sink) flush() (*ioData, error) {
	if s.empty() {
		return newIoData(), nil
	}
	data := newIoData()
	count, err := s.output.Write(s.buffer)
	data.add(count)
	if err != nil {
		return data, newWritingError(err)
	}
	defer s.resetBuffer()
	return data, nil
}

func (s *sink) full() bool {
	return len(s.buffer) >= s.threshold
}

func (s *sink) empty() bool {
	return len(s.buffer) == 0
}

func (s *sink) resetBuffer() {
	s.buffer = s.buffer[:0]
}
