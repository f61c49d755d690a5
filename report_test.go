package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainSummary(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	stats := scanStats{Tokens: 12, Ints: 10, Reads: 2, BytesIn: 40, Capacity: 16, Growths: 1, Elapsed: time.Second}
	require.NoError(t, printSummary(&out, stats, false))

	text := out.String()
	assert.Contains(text, "tokens:     12\n")
	assert.Contains(text, "integers:   10\n")
	assert.Contains(text, "bytes in:   40\n")
	assert.Contains(text, "buffer:     16 (1 growths)\n")
	assert.Contains(text, "elapsed:    1s\n")
	assert.NotContains(text, "\x1b[")
}

func TestNoColorOutsideTerminals(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, colorize(&out, false))
	assert.False(t, colorize(&out, true))
}
