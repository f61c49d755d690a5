package main

import (
	"errors"
	"fmt"
	"io"
)

type errorKind string

const (
	errorSourceRead      errorKind = "SOURCE_READ"
	errorMalformedNumber errorKind = "MALFORMED_NUMBER"
	errorOverflow        errorKind = "OVERFLOW"
	errorConfig          errorKind = "CONFIG"
	errorOutput          errorKind = "OUTPUT"
)

type scanError struct {
	kind      errorKind
	message   string
	token     string
	technical bool
	cause     error
}

func (err *scanError) Error() string {
	if err.hasCause() {
		return fmt.Sprintf("%s (cause: %s)", err.getMessage(), err.cause.Error())
	} else {
		return err.getMessage()
	}
}

func (err *scanError) Unwrap() error {
	return err.cause
}

func (err *scanError) getMessage() string {
	return err.message
}

func (err *scanError) getKind() errorKind {
	return err.kind
}

func (err *scanError) is(kind errorKind) bool {
	return err.kind == kind
}

// getToken returns the offending token text of a malformed number.
func (err *scanError) getToken() string {
	return err.token
}

func (err *scanError) isTechnical() bool {
	return err.technical
}

func (err *scanError) getCause() error {
	return err.cause
}

func (err *scanError) hasCause() bool {
	return err.cause != nil
}

func (err *scanError) isEOF() bool {
	return errors.Is(err.cause, io.EOF)
}

func newReadingError(err error) *scanError {
	return &scanError{
		kind:      errorSourceRead,
		message:   "error reading from source",
		technical: true,
		cause:     err,
	}
}

func newMalformedNumberError(token string, message string, a ...any) *scanError {
	return &scanError{
		kind:    errorMalformedNumber,
		message: fmt.Sprintf("malformed number %q: %s", token, fmt.Sprintf(message, a...)),
		token:   token,
	}
}

func newSumOverflowError(count int) *scanError {
	return &scanError{
		kind:    errorOverflow,
		message: fmt.Sprintf("sum overflows a 64-bit integer after %v integers", count),
	}
}

func newConfigError(message string, a ...any) *scanError {
	return &scanError{
		kind:    errorConfig,
		message: fmt.Sprintf(message, a...),
	}
}

func newWritingError(err error) *scanError {
	return &scanError{
		kind:      errorOutput,
		message:   "error writing to output",
		technical: true,
		cause:     err,
	}
}

// asScanError unwraps err into a *scanError when it carries one.
func asScanError(err error) (*scanError, bool) {
	var scanErr *scanError
	if errors.As(err, &scanErr) {
		return scanErr, true
	}
	return nil, false
}

func isEOF(err error) bool {
	if scanErr, ok := asScanError(err); ok {
		return scanErr.is(errorSourceRead) && scanErr.isEOF()
	}
	return errors.Is(err, io.EOF)
}

func isMalformedNumber(err error) bool {
	scanErr, ok := asScanError(err)
	return ok && scanErr.is(errorMalformedNumber)
}
