package hexfmt

import (
	"testing"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		opts Options
		want string
	}{
		{"default", 255, Default, "0xFF"},
		{"plain", 255, Hex, "FF"},
		{"zero pad single digit", 10, ZeroPad, "0A"},
		{"zero pad ignores wide", 300, ZeroPad, "12C"},
		{"zero pad and prefix", 1, ZeroPad | Prefix, "0x01"},
		{"zero", 0, Default, "0x0"},
		{"negative", -1, Hex, "FFFFFFFFFFFFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.n, tt.opts)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestFormat_RequiresHex(t *testing.T) {
	_, err := Format(1, 0)
	if !clierrors.IsValidationError(err) {
		t.Fatalf("Format() error = %v, want ValidationError", err)
	}
}

func TestTryFormat(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		want   string
		wantOK bool
	}{
		{"int", 16, "0x10", true},
		{"numeric string", " 42 ", "0x2A", true},
		{"uint8", uint8(7), "0x7", true},
		{"text", "abc", "", false},
		{"float", 1.5, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryFormat(tt.v, Default)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("TryFormat(%v) = %q, %v; want %q, %v", tt.v, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCell(t *testing.T) {
	if got := Cell(255, Default); got != "0xFF" {
		t.Errorf("Cell(255) = %v", got)
	}
	if got := Cell("name", Default); got != "name" {
		t.Errorf("Cell(name) = %v", got)
	}
}
