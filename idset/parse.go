package idset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidIdentifier indicates a token that cannot be interpreted as a
// numeric identifier. The wrapped message names the offending token; loaders
// add the source file and row.
var ErrInvalidIdentifier = errors.New("idset: invalid identifier format")

// ParseID converts a raw textual token into an ID.
//
// Accepted forms, in order of preference:
//  1. Plain base-10 integers ("42", "-7") — parsed exactly.
//  2. Float-convertible tokens ("42.0", "7.9", "1e3") — truncated toward
//     zero, provided the value is finite and representable as int64.
//
// Anything else (empty token, "abc", NaN, ±Inf, out-of-range magnitudes)
// returns ErrInvalidIdentifier wrapping the token.
//
// Complexity: O(len(token)).
func ParseID(token string) (ID, error) {
	t := strings.TrimSpace(token)
	if t == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidIdentifier)
	}

	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return ID(n), nil
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, token)
	}
	// int64 range guard; float64 cannot represent MaxInt64 exactly, so compare
	// against the nearest exactly-representable bound.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %q out of identifier range", ErrInvalidIdentifier, token)
	}

	return ID(math.Trunc(f)), nil
}

// ParseAll converts a slice of tokens, preserving order and duplicates.
// The first invalid token aborts with its error; no partial tolerance here —
// loaders that want to skip headers do so before calling ParseAll.
//
// Complexity: O(n).
func ParseAll(tokens []string) ([]ID, error) {
	out := make([]ID, 0, len(tokens))
	for _, tok := range tokens {
		id, err := ParseID(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, nil
}
