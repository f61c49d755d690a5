package main

import (
	"errors"
	"io"
)

type scannerState string

const (
	scannerReady     scannerState = "READY"
	scannerFilling   scannerState = "FILLING"
	scannerExhausted scannerState = "EXHAUSTED"
)

const (
	carryReturn = 13 // \r
	lineFeed    = 10 // \n
	formFeed    = 12 // \f
	space       = 32
	tab         = 9
)

// scanner splits a character source into whitespace separated tokens,
// reusing a single buffer for every token. It is not safe for concurrent
// use and never closes its source.
type scanner struct {
	src    charSource
	buf    *charBuffer
	state  scannerState
	tokens int
	lines  int
}

func newScanner(src charSource, capacity int) *scanner {
	scanner := new(scanner)
	scanner.src = src
	scanner.buf = newCharBuffer(capacity)
	scanner.state = scannerReady
	return scanner
}

func isWhitespace(ch byte) bool {
	switch ch {
	case space, tab, lineFeed, carryReturn, formFeed:
		return true
	default:
		return false
	}
}

// hasNext reports false once a fill has hit the end of the source. Before
// that it is optimistic: trailing whitespace may still turn the next call
// into an EOF.
func (scanner *scanner) hasNext() bool {
	return scanner.state != scannerExhausted
}

// fill loads the next token into the buffer. The end of the source ends
// the current token too; with nothing accumulated it exhausts the scanner.
func (scanner *scanner) fill() error {
	if scanner.state == scannerExhausted {
		return newReadingError(io.EOF)
	}
	scanner.state = scannerFilling
	scanner.buf.reset()
	for {
		ch, err := scanner.src.read()
		if errors.Is(err, io.EOF) {
			scanner.state = scannerExhausted
			if scanner.buf.empty() {
				return newReadingError(io.EOF)
			}
			scanner.tokens++
			return nil
		}
		if err != nil {
			scanner.buf.reset()
			scanner.state = scannerReady
			return newReadingError(err)
		}
		if isWhitespace(ch) {
			if scanner.buf.empty() {
				continue
			}
			scanner.state = scannerReady
			scanner.tokens++
			return nil
		}
		scanner.buf.append(ch)
	}
}

func (scanner *scanner) next() (string, error) {
	if err := scanner.fill(); err != nil {
		return "", err
	}
	return scanner.buf.text(), nil
}

// nextLine reads the rest of the current line straight from the source.
// Only a line read that finds nothing left exhausts the scanner; a final
// unterminated line leaves hasNext optimistic.
func (scanner *scanner) nextLine() (string, error) {
	line, err := scanner.src.readLine()
	if errors.Is(err, io.EOF) {
		scanner.state = scannerExhausted
	}
	if err != nil {
		return "", newReadingError(err)
	}
	scanner.lines++
	return line, nil
}

func (scanner *scanner) nextInt() (int32, error) {
	if err := scanner.fill(); err != nil {
		return 0, err
	}
	value, err := parseDecimal(scanner.buf.view(), 32)
	if err != nil {
		return 0, err
	}
	return int32(value), nil
}

func (scanner *scanner) nextInt64() (int64, error) {
	if err := scanner.fill(); err != nil {
		return 0, err
	}
	return parseDecimal(scanner.buf.view(), 64)
}

func (scanner *scanner) getState() scannerState {
	return scanner.state
}

func (scanner *scanner) numOfTokens() int {
	return scanner.tokens
}

func (scanner *scanner) numOfLines() int {
	return scanner.lines
}

func (scanner *scanner) bufferCapacity() int {
	return scanner.buf.capacity()
}

func (scanner *scanner) bufferGrowths() int {
	return scanner.buf.numOfGrowths()
}
