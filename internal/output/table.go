package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/salmonumbrella/consoletable/internal/table"
)

// Table is the structured form of a table for json and yaml output.
type Table struct {
	Headers []string `json:"headers" yaml:"headers"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
	Count   *int     `json:"count,omitempty" yaml:"count,omitempty"`
}

// FromTable converts t. Labels become strings; cells keep their values.
func FromTable(t *table.Table) Table {
	out := Table{Rows: t.Rows()}
	for _, c := range t.Columns() {
		out.Headers = append(out.Headers, table.CellText(c))
	}
	if out.Rows == nil {
		out.Rows = [][]any{}
	}
	if t.Options().EnableCount {
		n := t.RowCount()
		out.Count = &n
	}
	return out
}

// recordKeys returns headers as unique object keys. A repeated label gets
// the first free numeric suffix that no other column uses: A, A_2, A_3.
func recordKeys(headers []string) []string {
	labels := make(map[string]bool, len(headers))
	for _, h := range headers {
		labels[h] = true
	}
	used := make(map[string]bool, len(headers))
	keys := make([]string, len(headers))
	for i, h := range headers {
		key := h
		for n := 2; used[key] || (key != h && labels[key]); n++ {
			key = fmt.Sprintf("%s_%d", h, n)
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}

// record is one row as a JSON object with keys in column order.
type record struct {
	keys   []string
	values []any
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
