// Package table renders console tables.
//
// A Table holds ordered column labels and rows of cell values. Any value can
// be a label or a cell; its fmt.Sprint form is what gets measured and printed.
//
// # Building a Table
//
//	t := table.New("Name", "Age")
//	if err := t.AddRow("Alice", 31); err != nil {
//	    return err
//	}
//	if err := t.AttachStart("ID", 1); err != nil {
//	    return err
//	}
//
// Rows must always have one value per column. AddRow, Attach and
// RemoveColumn either apply fully or leave the table untouched.
//
// # Styles
//
// Four styles are available:
//   - default: boxed with "|" separators and full-width "-" dividers
//   - markdown: GitHub-flavored Markdown
//   - minimal: columns separated by padding only
//   - alternative: boxed with "+" joints in the dividers
//
// Render returns the text; Write and Fprint emit it with a trailing newline.
//
//	s, err := t.Render(table.StyleMarkdown)
//
// Widths are counted in Unicode code points. Wide characters (CJK, emoji)
// are not measured by display cell width.
//
// A Table is not safe for concurrent use.
package table
