package main

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFieldsOfAMalformedNumber(t *testing.T) {
	assert := assert.New(t)

	fields := errorFields(newMalformedNumberError("12a", "bad digit"))

	assert.Equal(errorMalformedNumber, fields["kind"])
	assert.Equal("12a", fields["token"])
	assert.Equal(false, fields["technical"])
	assert.NotContains(fields, "cause")
}

func TestErrorFieldsOfAReadingError(t *testing.T) {
	assert := assert.New(t)

	fields := errorFields(newReadingError(io.ErrUnexpectedEOF))

	assert.Equal(errorSourceRead, fields["kind"])
	assert.Equal(true, fields["technical"])
	assert.Equal(io.ErrUnexpectedEOF, fields["cause"])
	assert.NotContains(fields, "token")
}

func TestErrorFieldsOfAPlainError(t *testing.T) {
	err := errors.New("boom")
	fields := errorFields(err)
	assert.Len(t, fields, 1)
	assert.Equal(t, err, fields["error"])
}
