package main

import "math"

const (
	zeroChar = 48
	nineChar = 57
	minus    = 45 // -
	plus     = 43 // +
)

const decimalRadix = 10

func asciiDigit(ch byte) bool {
	return ch >= zeroChar && ch <= nineChar
}

// parseDecimal parses tok as a base 10 signed integer of the given bit size
// (1 to 64). The value is accumulated as a negative number so the minimum
// of the range, whose magnitude exceeds the maximum by one, needs no special
// case. Overflow is checked before the multiplication and after the
// subtraction of each digit.
func parseDecimal(tok []byte, bitSize int) (int64, error) {
	if len(tok) == 0 {
		return 0, newMalformedNumberError("", "empty token")
	}

	minValue := int64(math.MinInt64) >> (64 - bitSize)
	limit := minValue + 1
	negative := false
	start := 0

	switch tok[0] {
	case minus:
		negative = true
		limit = minValue
		start = 1
	case plus:
		start = 1
	}

	if start == len(tok) {
		return 0, newMalformedNumberError(string(tok), "sign without digits")
	}

	multmin := limit / decimalRadix
	var result int64
	for i := start; i < len(tok); i++ {
		ch := tok[i]
		if !asciiDigit(ch) {
			return 0, newMalformedNumberError(string(tok), "invalid digit %q at offset %d", ch, i)
		}
		digit := int64(ch - zeroChar)
		if result < multmin {
			return 0, outOfRange(tok, bitSize)
		}
		result *= decimalRadix
		if result < limit+digit {
			return 0, outOfRange(tok, bitSize)
		}
		result -= digit
	}

	if negative {
		return result, nil
	}
	return -result, nil
}

func outOfRange(tok []byte, bitSize int) *scanError {
	return newMalformedNumberError(string(tok), "out of range for a %d-bit integer", bitSize)
}
