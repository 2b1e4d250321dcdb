package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

type person struct {
	Name    string `json:"name"`
	Age     int    `json:"age,omitempty"`
	Email   string
	Secret  string `json:"-"`
	private string
}

func TestFrom(t *testing.T) {
	type point struct{ x, y int }
	mapper := func(p point) []Field {
		return []Field{{Label: "X", Value: p.x}, {Label: "Y", Value: p.y}}
	}

	tbl, err := From([]point{{1, 2}, {3, 4}}, mapper)
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	if diff := cmp.Diff([]any{"X", "Y"}, tbl.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]any{{1, 2}, {3, 4}}, tbl.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestFrom_RaggedRecords(t *testing.T) {
	mapper := func(n int) []Field {
		fields := make([]Field, n)
		for i := range fields {
			fields[i] = Field{Label: "c", Value: i}
		}
		return fields
	}

	_, err := From([]int{2, 3}, mapper)
	if !clierrors.IsShapeError(err) {
		t.Fatalf("From() error = %v, want ShapeError", err)
	}
	if !strings.HasPrefix(err.Error(), "record 1: ") {
		t.Errorf("error = %q, want record index prefix", err.Error())
	}
}

func TestFrom_MapperWithoutFields(t *testing.T) {
	_, err := From([]int{1}, func(int) []Field { return nil })
	if !clierrors.IsShapeError(err) {
		t.Fatalf("From() error = %v, want ShapeError", err)
	}
	if !strings.Contains(err.Error(), "mapper returned no fields") {
		t.Errorf("error = %q, want mapper hint", err.Error())
	}
}

func TestFrom_NoRecords(t *testing.T) {
	tbl, err := From([]int{}, func(int) []Field { return nil })
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	if tbl.ColumnCount() != 0 || tbl.RowCount() != 0 {
		t.Errorf("got %d columns, %d rows, want empty table", tbl.ColumnCount(), tbl.RowCount())
	}
}

func TestFromStructs(t *testing.T) {
	people := []person{
		{Name: "Alice", Age: 31, Email: "alice@example.com", Secret: "x"},
		{Name: "Bob", Email: "bob@example.com"},
	}

	tbl, err := FromStructs(people)
	if err != nil {
		t.Fatalf("FromStructs() error = %v", err)
	}
	if diff := cmp.Diff([]any{"name", "age", "Email"}, tbl.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}
	want := [][]any{
		{"Alice", 31, "alice@example.com"},
		{"Bob", 0, "bob@example.com"},
	}
	if diff := cmp.Diff(want, tbl.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStructs_Pointers(t *testing.T) {
	people := []*person{{Name: "Alice", Age: 31}, nil}

	tbl, err := FromStructs(people)
	if err != nil {
		t.Fatalf("FromStructs() error = %v", err)
	}
	if diff := cmp.Diff([][]any{{"Alice", 31, ""}, {nil, nil, nil}}, tbl.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}

	out, err := tbl.RenderMarkdown()
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if out == "" {
		t.Error("expected rendered output")
	}
}

func TestFromStructs_Empty(t *testing.T) {
	tbl, err := FromStructs([]person{})
	if err != nil {
		t.Fatalf("FromStructs() error = %v", err)
	}
	if diff := cmp.Diff([]any{"name", "age", "Email"}, tbl.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}
	if tbl.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", tbl.RowCount())
	}
}
