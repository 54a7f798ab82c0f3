package qrect

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned when a side length is not a positive integer.
var ErrInvalidInput = errors.New("side lengths must be positive integers")

// EncodeLengths converts positive integers into binary strings of a common
// width. The width is the bit length of the largest input, and shorter
// values are padded with zeros on the left.
func EncodeLengths(lengths []int) ([]string, error) {
	if len(lengths) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no lengths given")
	}

	maxLen := 0
	for _, n := range lengths {
		if n <= 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "got %d", n)
		}
		if n > maxLen {
			maxLen = n
		}
	}

	width := bits.Len(uint(maxLen))
	encoded := make([]string, len(lengths))
	for i, n := range lengths {
		encoded[i] = toFixedBinary(n, width)
	}
	return encoded, nil
}

// toFixedBinary formats n in base 2, left-padded with zeros to width.
func toFixedBinary(n, width int) string {
	s := strconv.FormatInt(int64(n), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// ParseLengths parses side-length tokens from the command line. Tokens that
// are not positive integers ("2.5", "-1", "abc") are rejected with
// ErrInvalidInput rather than silently treated as "not a rectangle".
func ParseLengths(tokens []string) ([]int, error) {
	lengths := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "%q is not an integer", tok)
		}
		if n <= 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "%q is not positive", tok)
		}
		lengths[i] = n
	}
	return lengths, nil
}
