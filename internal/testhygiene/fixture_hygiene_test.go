package testhygiene

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// Fixtures create files under t.TempDir; a hard-coded home directory
	// means a test touches the developer's machine.
	homePathPattern = regexp.MustCompile(`"(/Users/|/home/|C:\\\\Users\\\\)[^"]*"`)
)

func TestFixtureHygiene_NoIdentifyingContent(t *testing.T) {
	repoRoot := findRepoRoot(t)

	var findings []string
	err := filepath.WalkDir(repoRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(repoRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != repoRoot && skipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !shouldScanFixtureFile(rel) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		content := string(raw)

		for _, email := range emailPattern.FindAllString(content, -1) {
			domain := emailDomain(email)
			if !isAllowedFixtureEmailDomain(domain) {
				findings = append(findings, fmt.Sprintf("%s: contains non-synthetic email %q", rel, email))
			}
		}

		for _, p := range homePathPattern.FindAllString(content, -1) {
			findings = append(findings, fmt.Sprintf("%s: contains absolute home path %s; use t.TempDir()", rel, p))
		}

		return nil
	})
	if err != nil {
		t.Fatalf("fixture hygiene scan failed: %v", err)
	}

	if len(findings) > 0 {
		t.Fatalf("fixture hygiene violations:\n%s", strings.Join(findings, "\n"))
	}
}

// skipDir matches directories the go tool ignores, plus editor state.
func skipDir(base string) bool {
	switch base {
	case ".git", ".idea", ".vscode", "node_modules":
		return true
	}
	return strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".")
}

func shouldScanFixtureFile(rel string) bool {
	if strings.HasPrefix(rel, "internal/testhygiene/") {
		return false
	}
	if strings.HasSuffix(rel, "_test.go") {
		return true
	}
	if strings.Contains(rel, "/testdata/") {
		return true
	}
	return false
}

func findRepoRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find repo root from %q", dir)
		}
		dir = parent
	}
}

func emailDomain(email string) string {
	parts := strings.SplitN(strings.ToLower(email), "@", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func isAllowedFixtureEmailDomain(domain string) bool {
	switch domain {
	case "example.com", "example.org", "example.net", "example.test", "example.invalid", "localhost", "test.local":
		return true
	default:
		return strings.HasSuffix(domain, ".example.invalid")
	}
}

func TestSkipDir(t *testing.T) {
	tests := map[string]bool{
		"_examples": true,
		".git":      true,
		"testdata":  false,
		"internal":  false,
	}
	for base, want := range tests {
		if got := skipDir(base); got != want {
			t.Errorf("skipDir(%q) = %v, want %v", base, got, want)
		}
	}
}
