// Package hexfmt formats integers as hexadecimal cell text.
package hexfmt

import (
	"fmt"
	"strconv"
	"strings"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

// Options controls hex formatting. ZeroPad and Prefix imply Hex.
type Options uint8

const (
	// Hex renders the number in uppercase hexadecimal.
	Hex Options = 1 << 1
	// ZeroPad pads single-digit output with a leading "0".
	ZeroPad Options = Hex | 1<<2
	// Prefix prepends "0x".
	Prefix Options = Hex | 1<<3

	// Default is Hex with the "0x" prefix.
	Default = Hex | Prefix
)

// Has reports whether every bit of flag is set.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// Format returns n in hexadecimal. Negative numbers are shown as their
// 64-bit two's complement.
func Format(n int64, opts Options) (string, error) {
	if !opts.Has(Hex) {
		return "", &clierrors.ValidationError{Field: "options", Message: "must include the Hex flag"}
	}

	s := fmt.Sprintf("%X", uint64(n))
	if opts.Has(ZeroPad) && len(s) == 1 {
		s = "0" + s
	}
	if opts.Has(Prefix) {
		s = "0x" + s
	}
	return s, nil
}

// TryFormat formats v when its text form is a base-10 integer.
func TryFormat(v any, opts Options) (string, bool) {
	if v == nil {
		return "", false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(fmt.Sprint(v)), 10, 64)
	if err != nil {
		return "", false
	}
	s, err := Format(n, opts)
	if err != nil {
		return "", false
	}
	return s, true
}

// Cell returns the hex text of v when it is an integer, and v unchanged
// otherwise.
func Cell(v any, opts Options) any {
	if s, ok := TryFormat(v, opts); ok {
		return s
	}
	return v
}
