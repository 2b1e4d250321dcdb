package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

const scores = `[{"name":"a","score":1},{"name":"b","score":3},{"name":"c","score":5}]`

func TestDecode_Query(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		columns []any
		rows    [][]any
	}{
		{
			name:    "filter keeps objects",
			query:   "map(select(.score > 2))",
			columns: []any{"name", "score"},
			rows:    [][]any{{"b", int64(3)}, {"c", int64(5)}},
		},
		{
			name:    "multiple results collect",
			query:   ".[] | .score",
			columns: []any{"value"},
			rows:    [][]any{{int64(1)}, {int64(3)}, {int64(5)}},
		},
		{
			name:    "shell escaped bang",
			query:   `map(select(.name \!= "a")) | map({name})`,
			columns: []any{"name"},
			rows:    [][]any{{"b"}, {"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, _, err := Decode([]byte(scores), "stdin", Options{Format: FormatJSON, Query: tt.query})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.columns, tbl.Columns()); diff != "" {
				t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.rows, tbl.Rows()); diff != "" {
				t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_QueryErrors(t *testing.T) {
	for _, q := range []string{"map(", ".[] | select(false)"} {
		_, _, err := Decode([]byte(scores), "stdin", Options{Format: FormatJSON, Query: q})
		if !clierrors.IsUserError(err) {
			t.Errorf("Decode(query=%q) error = %v, want UserError", q, err)
		}
	}
}

func TestDecode_JSONPath(t *testing.T) {
	data := `{"items":[{"id":1},{"id":2}],"total":2}`

	for _, path := range []string{"items", ".items", "$.items"} {
		tbl, _, err := Decode([]byte(data), "stdin", Options{Format: FormatJSON, JSONPath: path})
		if err != nil {
			t.Fatalf("Decode(jsonpath=%q) error = %v", path, err)
		}
		if diff := cmp.Diff([][]any{{int64(1)}, {int64(2)}}, tbl.Rows()); diff != "" {
			t.Errorf("jsonpath=%q rows mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{`.a \!= 1`, `.a != 1`, true},
		{`.a == "\!"`, `.a == "\!"`, false},
		{`.a`, `.a`, false},
	}

	for _, tt := range tests {
		got, changed := NormalizeQuery(tt.in)
		if got != tt.want || changed != tt.changed {
			t.Errorf("NormalizeQuery(%q) = %q, %v; want %q, %v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestNormalizeJSONPath(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"  ":       "",
		"$.a":      "$.a",
		"@.a":      "@.a",
		".a":       "$.a",
		"[0]":      "$[0]",
		"items[*]": "$.items[*]",
	}
	for in, want := range tests {
		if got := normalizeJSONPath(in); got != want {
			t.Errorf("normalizeJSONPath(%q) = %q, want %q", in, got, want)
		}
	}
}
