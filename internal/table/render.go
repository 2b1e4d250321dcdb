package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

// Style selects how a table is rendered.
type Style int

const (
	// StyleDefault is a boxed layout with "|" separators and "-" dividers
	// between every row.
	StyleDefault Style = iota
	// StyleMarkdown is a GitHub-flavored Markdown table.
	StyleMarkdown
	// StyleAlternative is a boxed layout whose dividers use "+" joints.
	StyleAlternative
	// StyleMinimal separates columns by padding only.
	StyleMinimal
)

// Styles lists every style in selector order.
var Styles = []Style{StyleDefault, StyleMarkdown, StyleAlternative, StyleMinimal}

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleMarkdown:
		return "markdown"
	case StyleAlternative:
		return "alternative"
	case StyleMinimal:
		return "minimal"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle converts a string to a Style.
// Empty string defaults to StyleDefault.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "boxed":
		return StyleDefault, nil
	case "markdown", "md":
		return StyleMarkdown, nil
	case "alternative", "alt":
		return StyleAlternative, nil
	case "minimal", "plain":
		return StyleMinimal, nil
	default:
		return 0, &clierrors.InvalidSelectorError{Value: s}
	}
}

const markdownDelim = "|"

// Render returns the table in the given style.
func (t *Table) Render(style Style) (string, error) {
	switch style {
	case StyleDefault:
		return t.RenderDefault()
	case StyleMarkdown:
		return t.RenderMarkdown()
	case StyleAlternative:
		return t.RenderAlternative()
	case StyleMinimal:
		return t.RenderMinimal()
	default:
		return "", &clierrors.InvalidSelectorError{Value: style.String()}
	}
}

// String renders the table as Markdown. It returns "" for a table without
// columns; use Render to get the error instead.
func (t *Table) String() string {
	s, err := t.RenderMarkdown()
	if err != nil {
		return ""
	}
	return s
}

// Fprint writes the table in the given style to w, followed by a newline.
func (t *Table) Fprint(w io.Writer, style Style) error {
	s, err := t.Render(style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// Write prints the table in the given style to standard output.
func (t *Table) Write(style Style) error {
	return t.Fprint(os.Stdout, style)
}

func (t *Table) checkRenderable() error {
	if len(t.columns) == 0 {
		return &clierrors.ShapeError{Op: "render", Message: "table has no columns"}
	}
	return nil
}

// RenderDefault draws a box around every row. The divider is as long as the
// longest rendered line.
func (t *Table) RenderDefault() (string, error) {
	if err := t.checkRenderable(); err != nil {
		return "", err
	}

	tp := newTemplate(t.ColumnWidths(), markdownDelim, false)
	header := tp.line(t.columns)

	longest := utf8.RuneCountInString(header)
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = tp.line(r)
		longest = max(longest, utf8.RuneCountInString(lines[i]))
	}

	divider := " " + strings.Repeat("-", max(longest-1, 0)) + " "

	var b strings.Builder
	writeLine(&b, divider)
	writeLine(&b, header)
	for _, l := range lines {
		writeLine(&b, divider)
		writeLine(&b, l)
	}
	writeLine(&b, divider)

	if t.enableCount {
		b.WriteString("\n")
		fmt.Fprintf(&b, " Count: %d", len(t.rows))
	}
	return b.String(), nil
}

// RenderMarkdown renders a GitHub-flavored Markdown table.
func (t *Table) RenderMarkdown() (string, error) {
	return t.renderDelimited(markdownDelim, nil)
}

// RenderMinimal renders the Markdown layout without any delimiter.
func (t *Table) RenderMinimal() (string, error) {
	return t.renderDelimited("", nil)
}

// RenderAlternative renders a box whose dividers use "+" at column joints.
func (t *Table) RenderAlternative() (string, error) {
	plus := func(divider string) string {
		return strings.ReplaceAll(divider, markdownDelim, "+")
	}
	return t.renderDelimited(markdownDelim, plus)
}

// renderDelimited is shared by the Markdown, Minimal and Alternative styles.
// The divider is the header with everything but "|" turned into "-", then
// passed through post. A nil post yields the Markdown layout (header,
// divider, rows); otherwise the rows are boxed by dividers.
func (t *Table) renderDelimited(delim string, post func(string) string) (string, error) {
	if err := t.checkRenderable(); err != nil {
		return "", err
	}

	tp := newTemplate(t.ColumnWidths(), delim, true)
	header := tp.line(t.columns)
	divider := dividerFrom(header)

	var b strings.Builder
	if post == nil {
		// A leading "|" over an empty first label renders as a stray cell.
		if CellText(t.columns[0]) == "" && header != "" {
			_, size := utf8.DecodeRuneInString(header)
			header = " " + header[size:]
		}
		writeLine(&b, header)
		writeLine(&b, divider)
		for _, r := range t.rows {
			writeLine(&b, tp.line(r))
		}
		return b.String(), nil
	}

	divider = post(divider)
	writeLine(&b, divider)
	writeLine(&b, header)
	for _, r := range t.rows {
		writeLine(&b, divider)
		writeLine(&b, tp.line(r))
	}
	writeLine(&b, divider)
	return b.String(), nil
}

func dividerFrom(header string) string {
	return strings.Map(func(r rune) rune {
		if r == '|' {
			return r
		}
		return '-'
	}, header)
}

func writeLine(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}
