package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

func TestRenderCmd_Styles(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default",
			args: []string{"render"},
			want: " --------- \n | A | B |\n --------- \n | 1 | 2 |\n --------- \n\n",
		},
		{
			name: "markdown",
			args: []string{"render", "-s", "markdown"},
			want: "| A | B |\n|---|---|\n| 1 | 2 |\n\n",
		},
		{
			name: "alternative",
			args: []string{"render", "--style", "alt", "-"},
			want: "+---+---+\n| A | B |\n+---+---+\n| 1 | 2 |\n+---+---+\n\n",
		},
		{
			name: "minimal",
			args: []string{"render", "-s", "minimal"},
			want: "A  B\n----\n1  2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runApp(t, "A,B\n1,2\n", tt.args...)
			if res.err != nil {
				t.Fatalf("render error = %v\nstderr=%s", res.err, res.stderr)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout =\n%q\nwant:\n%q", res.stdout, tt.want)
			}
		})
	}
}

func TestRenderCmd_Count(t *testing.T) {
	res := runApp(t, "A,B\n1,2\n", "render", "--count")
	if res.err != nil {
		t.Fatalf("render error = %v", res.err)
	}
	if !strings.HasSuffix(res.stdout, " --------- \n\n Count: 1\n") {
		t.Errorf("stdout = %q, want count line", res.stdout)
	}
}

func TestRenderCmd_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.json")
	if err := os.WriteFile(path, []byte(`[{"name":"Alice","age":30}]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := runApp(t, "", "render", "-s", "minimal", path)
	if res.err != nil {
		t.Fatalf("render error = %v\nstderr=%s", res.err, res.stderr)
	}
	want := "age  name \n----------\n30   Alice\n\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%q\nwant:\n%q", res.stdout, want)
	}
}

func TestRenderCmd_Query(t *testing.T) {
	res := runApp(t, `[{"id":1,"tags":["a"]},{"id":2}]`, "render", "-s", "markdown", "-q", "map({id})")
	if res.err != nil {
		t.Fatalf("render error = %v\nstderr=%s", res.err, res.stderr)
	}
	want := "| id |\n|----|\n| 1  |\n| 2  |\n\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%q\nwant:\n%q", res.stdout, want)
	}
}

func TestRenderCmd_YAMLWithJSONPath(t *testing.T) {
	doc := "items:\n  - id: 7\n  - id: 8\n"
	res := runApp(t, doc, "render", "-f", "yaml", "--jsonpath", "items", "-s", "markdown")
	if res.err != nil {
		t.Fatalf("render error = %v\nstderr=%s", res.err, res.stderr)
	}
	want := "| id |\n|----|\n| 7  |\n| 8  |\n\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%q\nwant:\n%q", res.stdout, want)
	}
}

func TestRenderCmd_DropAndIndex(t *testing.T) {
	res := runApp(t, "A,B,C\n1,2,3\n", "render", "-s", "markdown", "--drop-column", "1", "--index")
	if res.err != nil {
		t.Fatalf("render error = %v\nstderr=%s", res.err, res.stderr)
	}
	want := "| # | A | C |\n|---|---|---|\n| 1 | 1 | 3 |\n\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%q\nwant:\n%q", res.stdout, want)
	}
}

func TestRenderCmd_DropColumnOutOfRange(t *testing.T) {
	res := runApp(t, "A,B\n1,2\n", "render", "--drop-column", "5")
	if !clierrors.IsIndexError(res.err) {
		t.Fatalf("render error = %v, want IndexError", res.err)
	}
	if ExitCode(res.err) != ExitUser {
		t.Errorf("ExitCode() = %d, want %d", ExitCode(res.err), ExitUser)
	}
	if !strings.Contains(res.stderr, "Hint: Column indexes are zero-based") {
		t.Errorf("stderr = %q, want index hint", res.stderr)
	}
}

func TestRenderCmd_Hex(t *testing.T) {
	res := runApp(t, "n\n10\n255\nx\n", "render", "-s", "markdown", "--hex")
	if res.err != nil {
		t.Fatalf("render error = %v\nstderr=%s", res.err, res.stderr)
	}
	want := "| n    |\n|------|\n| 0xA  |\n| 0xFF |\n| x    |\n\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%q\nwant:\n%q", res.stdout, want)
	}

	res = runApp(t, "n\n10\n", "render", "--hex-pad")
	if !clierrors.IsUserError(res.err) {
		t.Errorf("--hex-pad without --hex error = %v, want UserError", res.err)
	}
}

func TestRenderCmd_PaddedRowsWarn(t *testing.T) {
	res := runApp(t, "A,B\n1\n", "render", "-s", "markdown")
	if res.err != nil {
		t.Fatalf("render error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "stdin: padded 1 short row(s)") {
		t.Errorf("stderr = %q, want padding warning", res.stderr)
	}
	if !strings.Contains(res.stdout, "| 1 |   |") {
		t.Errorf("stdout = %q, want padded row", res.stdout)
	}
}

func TestRenderCmd_InvalidStyle(t *testing.T) {
	res := runApp(t, "A\n1\n", "render", "-s", "fancy")
	if !clierrors.IsInvalidSelectorError(res.err) {
		t.Fatalf("render error = %v, want InvalidSelectorError", res.err)
	}
	if ExitCode(res.err) != ExitUser {
		t.Errorf("ExitCode() = %d, want %d", ExitCode(res.err), ExitUser)
	}
	if !strings.Contains(res.stderr, "Hint: Use one of: default, markdown, alternative, minimal") {
		t.Errorf("stderr = %q", res.stderr)
	}
	if res.stdout != "" {
		t.Errorf("nothing should be rendered, got %q", res.stdout)
	}
}

func TestRenderCmd_JSONErrorEnvelope(t *testing.T) {
	res := runApp(t, "A\n1\n", "render", "-s", "fancy", "--error-format", "json")
	if res.err == nil {
		t.Fatal("expected error")
	}

	var env map[string]map[string]any
	if err := json.Unmarshal([]byte(res.stderr), &env); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, res.stderr)
	}
	payload := env["error"]
	if payload["type"] != "style" || payload["category"] != "user" || payload["value"] != "fancy" {
		t.Errorf("unexpected envelope: %v", payload)
	}
}

func TestRenderCmd_SourceErrorLine(t *testing.T) {
	res := runApp(t, "A,B\n1,2\n1,2,3\n", "render")
	if !clierrors.IsSourceError(res.err) {
		t.Fatalf("render error = %v, want SourceError", res.err)
	}
	if !strings.HasPrefix(res.stderr, "stdin:3: ") {
		t.Errorf("stderr = %q, want stdin:3 prefix", res.stderr)
	}
}

func TestRenderCmd_OutputJSON(t *testing.T) {
	res := runApp(t, "A,B\n1,2\n", "-o", "json", "render")
	if res.err != nil {
		t.Fatalf("render error = %v", res.err)
	}

	var doc struct {
		Headers []string `json:"headers"`
		Rows    [][]any  `json:"rows"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(doc.Headers) != 2 || len(doc.Rows) != 1 || doc.Rows[0][0] != "1" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRenderCmd_StyleFromEnvAndConfig(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		out := runAppWithEnv(t, map[string]string{"CTAB_STYLE": "markdown"}, "A\n1\n", "render")
		if out.stdout != "| A |\n|---|\n| 1 |\n\n" {
			t.Errorf("stdout = %q, want markdown", out.stdout)
		}
	})

	t.Run("config file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("style: minimal\ncount: true\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		res := runApp(t, "A\n1\n", "--config", cfgPath, "render")
		if res.err != nil {
			t.Fatalf("render error = %v", res.err)
		}
		if res.stdout != "A\n-\n1\n\n" {
			t.Errorf("stdout = %q, want minimal without count line", res.stdout)
		}
	})

	t.Run("flag wins", func(t *testing.T) {
		out := runAppWithEnv(t, map[string]string{"CTAB_STYLE": "markdown"}, "A\n1\n", "render", "-s", "alternative")
		if !strings.HasPrefix(out.stdout, "+---+\n") {
			t.Errorf("stdout = %q, want alternative", out.stdout)
		}
	})
}
