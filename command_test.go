package main

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeCodesAreCaseInsensitive(t *testing.T) {
	code, err := parseCommandCode("Freq")
	assert.Nil(t, err)
	assert.Equal(t, commandFreq, code)

	_, err = parseCommandCode("dance")
	assert.Error(t, err)
}

func TestEveryModeHasARunner(t *testing.T) {
	for _, code := range commandCodes {
		assert.NotNil(t, commandRunners[code], "mode %v", code)
	}
}

func TestTokensMode(t *testing.T) {
	output, _, err := runJobTest("tokens", "  alpha beta\r\n\tgamma  \n", nil)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\ngamma\n", output)
}

func TestIntsMode(t *testing.T) {
	output, stats, err := runJobTest("ints", "1 -2\n+3\t-2147483648\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "1\n-2\n3\n-2147483648\n", output)
	assert.Equal(t, 4, stats.Ints)
}

func TestIntsModeStopsAtMalformedNumbers(t *testing.T) {
	output, _, err := runJobTest("ints", "1 2 x3 4", nil)
	assert.True(t, isMalformedNumber(err))
	assert.Equal(t, "1\n2\n", output, "output before the failure is flushed")
}

func TestIntsModeSkippingMalformedNumbers(t *testing.T) {
	output, stats, err := runJobTest("ints", "1 2147483648 - 4", func(s *ScanSettings) {
		s.SkipMalformed = true
	})
	require.NoError(t, err)
	assert.Equal(t, "1\n4\n", output)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 4, stats.Tokens)
}

func TestWideIntsMode(t *testing.T) {
	output, _, err := runJobTest("ints", "2147483648 -9223372036854775808", func(s *ScanSettings) {
		s.Wide = true
	})
	require.NoError(t, err)
	assert.Equal(t, "2147483648\n-9223372036854775808\n", output)
}

func TestSumModeWithFilter(t *testing.T) {
	output, stats, err := runJobTest("sum", "1 2 3 4 5 6", func(s *ScanSettings) {
		s.Filter = "n % 2 == 0"
	})
	require.NoError(t, err)
	assert.Equal(t, "12\n", output)
	assert.Equal(t, 3, stats.Filtered)
}

func TestSumModeOverflow(t *testing.T) {
	_, _, err := runJobTest("sum", "9223372036854775807 1", func(s *ScanSettings) {
		s.Wide = true
	})
	assert.ErrorContains(t, err, "overflows")
	scanErr, ok := asScanError(err)
	require.True(t, ok)
	assert.Equal(t, errorOverflow, scanErr.getKind())
}

func TestCountMode(t *testing.T) {
	output, _, err := runJobTest("count", "a bb ccc\n\n dddd", func(s *ScanSettings) {
		s.Filter = "len(tok) > 1"
	})
	require.NoError(t, err)
	assert.Equal(t, "3\n", output)
}

func TestLinesMode(t *testing.T) {
	output, stats, err := runJobTest("lines", "one  two\r\n\nthree", nil)
	require.NoError(t, err)
	assert.Equal(t, "one  two\n\nthree\n", output)
	assert.Equal(t, 3, stats.Lines)
}

func TestFreqMode(t *testing.T) {
	output, _, err := runJobTest("freq", "b a c a\nb a", nil)
	require.NoError(t, err)
	assert.Equal(t, "3 a\n2 b\n1 c\n", output)
}

func TestJobOverAFile(t *testing.T) {
	assert := assert.New(t)

	fs := fstest.MapFS{
		"test/job/numbers.txt": {
			Data: []byte(strings.Repeat("1234567890 ", 100)),
		},
	}

	inputFile, err := fs.Open("test/job/numbers.txt")
	require.NoError(t, err)
	defer inputFile.Close()

	settings := defaultSettings()
	settings.Mode = "sum"
	settings.Capacity = 4
	settings.ReadBuffer = 64
	settings.FlushThreshold = 8

	out := newMockOutputStream()
	job, err := newScanJob(settings, inputFile, out)
	require.NoError(t, err)
	require.NoError(t, job.run())

	stats := job.summary()
	assert.Equal("123456789000\n", out.stringContent())
	assert.Equal(100, stats.Ints)
	assert.Equal(1100, stats.BytesIn)
	assert.Equal(19, stats.Reads)
	assert.Equal(1, stats.Writes)
	assert.Equal(16, stats.Capacity)
}

func TestJobWithInvalidFilter(t *testing.T) {
	settings := defaultSettings()
	settings.Filter = "tok +"
	_, err := newScanJob(settings, strings.NewReader(""), newMockOutputStream())
	assert.Error(t, err)
}

func runJobTest(mode string, input string, configure func(*ScanSettings)) (string, scanStats, error) {
	settings := defaultSettings()
	settings.Mode = mode
	settings.Capacity = 2
	settings.ReadBuffer = 3
	settings.FlushThreshold = 4
	if configure != nil {
		configure(&settings)
	}

	out := newMockOutputStream()
	job, err := newScanJob(settings, strings.NewReader(input), out)
	if err != nil {
		return "", scanStats{}, err
	}
	err = job.run()
	return out.stringContent(), job.summary(), err
}
