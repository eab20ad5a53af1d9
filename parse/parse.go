// Package parse converts delimited text into typed numeric sequences.
// It exists to assemble example graphs and test fixtures from literal
// strings; the analysis packages never depend on it for correctness.
//
// Key functions:
//
//   - Value[T](text): convert one token to T
//   - Fields[T](text, sep): split text on sep and convert every token
//
// Tokens are trimmed of surrounding whitespace before conversion, so
// "3 -- 6" with separator "--" yields [3, 6].
//
// Errors:
//
//   - ErrParse          a token cannot be converted to T
//   - ErrEmptySeparator sep is the empty string
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for parsing operations.
var (
	// ErrParse indicates a token could not be converted to the requested
	// numeric type. The wrapping error names the offending token.
	ErrParse = errors.New("parse: cannot convert token")

	// ErrEmptySeparator indicates Fields was called with an empty separator.
	ErrEmptySeparator = errors.New("parse: separator must be non-empty")
)

// Number is the set of types Fields and Value can produce.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value converts a single trimmed token to T.
// Returns ErrParse (wrapped with the token) on any conversion failure.
// Complexity: O(len(text)).
func Value[T Number](text string) (T, error) {
	return convert[T](strings.TrimSpace(text))
}

// Fields splits text on sep and converts every token to T, preserving
// token order. An empty text yields a single empty token and therefore
// ErrParse; an empty sep yields ErrEmptySeparator.
// Returns ErrParse (wrapped with the offending token) on the first token
// that cannot be converted; no partial sequence is returned.
// Complexity: O(len(text)).
func Fields[T Number](text, sep string) ([]T, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}

	words := strings.Split(text, sep)
	out := make([]T, len(words))
	var err error
	for i, w := range words {
		if out[i], err = convert[T](strings.TrimSpace(w)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// convert dispatches a trimmed token to the strconv parser matching T.
// The zero value of T selects the branch: integers via ParseInt/ParseUint,
// floats via ParseFloat, each sized to the concrete type.
func convert[T Number](token string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(token, bitSize(zero))
		if err != nil {
			return zero, fmt.Errorf("%w: %q", ErrParse, token)
		}

		return T(f), nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := strconv.ParseUint(token, 10, bitSize(zero))
		if err != nil {
			return zero, fmt.Errorf("%w: %q", ErrParse, token)
		}

		return T(u), nil
	default:
		i, err := strconv.ParseInt(token, 10, bitSize(zero))
		if err != nil {
			return zero, fmt.Errorf("%w: %q", ErrParse, token)
		}

		return T(i), nil
	}
}

// bitSize reports the bit width strconv needs for the concrete type of v.
func bitSize(v any) int {
	switch v.(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	default:
		return 64
	}
}
