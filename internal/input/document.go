package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

// ValueColumn labels the single column used for scalar documents.
const ValueColumn = "value"

// decodeDocument parses JSON or YAML. Streams of several documents (JSON
// lines, YAML "---" separated) become one array.
func decodeDocument(data []byte, format Format, source string) (any, error) {
	var docs []any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, clierrors.WrapSource(source, jsonErrorLine(data, err), err)
			}
			docs = append(docs, v)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, clierrors.WrapSource(source, 0, err)
			}
			docs = append(docs, v)
		}
	default:
		return nil, fmt.Errorf("not a document format: %s", format)
	}

	var doc any
	switch len(docs) {
	case 0:
		return nil, clierrors.NewUserError(
			fmt.Sprintf("no data in %s", source),
			"Pipe a JSON or YAML document, or pass a file path",
		)
	case 1:
		doc = docs[0]
	default:
		doc = docs
	}
	return normalizeToInterface(doc)
}

// jsonErrorLine maps a decoder error offset back to a 1-based line.
func jsonErrorLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	offset = min(offset, int64(len(data)))
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// normalizeToInterface converts data to plain JSON shapes (map[string]any,
// []any, float64, string, bool, nil) by round-tripping through encoding/json.
func normalizeToInterface(data any) (any, error) {
	buf, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}
	var out any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return out, nil
}

// tabulate lays a document out as columns and rows:
//
//   - array of objects: one column per key, in first-seen order
//   - array of arrays: the first array is the header
//   - object: a key/value table sorted by key
//   - anything else: a single "value" column
func tabulate(doc any) (grid, error) {
	var g grid
	switch v := doc.(type) {
	case []any:
		switch {
		case len(v) == 0:
			return g, nil
		case allOf[map[string]any](v):
			return tabulateObjects(v), nil
		case allOf[[]any](v):
			return tabulateArrays(v)
		}
		g.columns = []any{ValueColumn}
		for _, item := range v {
			g.rows = append(g.rows, []any{cellValue(item)})
		}
	case map[string]any:
		g.columns = []any{"key", ValueColumn}
		keys := sortedKeys(v)
		for _, k := range keys {
			g.rows = append(g.rows, []any{k, cellValue(v[k])})
		}
	default:
		g.columns = []any{ValueColumn}
		g.rows = [][]any{{cellValue(v)}}
	}
	return g, nil
}

func tabulateObjects(items []any) grid {
	var (
		g     grid
		keys  []string
		index = map[string]int{}
	)
	for _, item := range items {
		for _, k := range sortedKeys(item.(map[string]any)) {
			if _, ok := index[k]; !ok {
				index[k] = len(keys)
				keys = append(keys, k)
			}
		}
	}
	for _, k := range keys {
		g.columns = append(g.columns, k)
	}
	for _, item := range items {
		obj := item.(map[string]any)
		row := make([]any, len(keys))
		for k, val := range obj {
			row[index[k]] = cellValue(val)
		}
		g.rows = append(g.rows, row)
	}
	return g
}

func tabulateArrays(items []any) (grid, error) {
	var g grid
	for _, h := range items[0].([]any) {
		g.columns = append(g.columns, cellValue(h))
	}
	for i, item := range items[1:] {
		src := item.([]any)
		row := make([]any, len(src))
		for j, val := range src {
			row[j] = cellValue(val)
		}
		if err := g.add(row); err != nil {
			return grid{}, fmt.Errorf("element %d: %w", i+1, err)
		}
	}
	return g, nil
}

// cellValue turns a document value into a table cell. Whole numbers render
// without a decimal point and nested values render as compact JSON.
func cellValue(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return int64(val)
		}
		return val
	case map[string]any, []any:
		buf, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(buf)
	default:
		return v
	}
}

func allOf[T any](items []any) bool {
	for _, item := range items {
		if _, ok := item.(T); !ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
