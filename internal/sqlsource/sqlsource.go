// Package sqlsource runs read queries against SQLite databases and returns
// the result set as a table.
package sqlsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/table"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Options tunes a query.
type Options struct {
	// Limit stops reading after this many rows. Zero means no limit.
	Limit int
	// Args are bound to the query's placeholders.
	Args []any
}

// Open opens path read-only. The file must exist.
func Open(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, clierrors.NewUserError(
				fmt.Sprintf("database not found: %s", path),
				"Pass the path of an existing SQLite file",
			)
		}
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	db, err := sql.Open(DriverName, fileDSN(path, "mode=ro&_pragma=busy_timeout(5000)"))
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// uriPathEscaper escapes the characters SQLite's URI parser would read as
// query, fragment or escape delimiters.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// fileDSN returns a file: URI for path with the given query parameters.
func fileDSN(path, params string) string {
	dsn := "file:" + uriPathEscaper.Replace(path)
	if params != "" {
		dsn += "?" + params
	}
	return dsn
}

// Query runs query against the database at path.
func Query(ctx context.Context, path, query string, opts Options) (*table.Table, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return QueryDB(ctx, db, query, opts)
}

// QueryDB runs query on db and tabulates the result set. Column names
// become the header.
func QueryDB(ctx context.Context, db *sql.DB, query string, opts Options) (*table.Table, error) {
	if strings.TrimSpace(query) == "" {
		return nil, clierrors.NewUserError("empty query", "Example: ctab sql app.db 'SELECT * FROM users'")
	}

	start := time.Now()
	rows, err := db.QueryContext(ctx, query, opts.Args...)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "query failed", "Check the SQL syntax and table names")
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}
	labels := make([]any, len(names))
	for i, n := range names {
		labels[i] = n
	}
	t := table.New(labels...)

	for rows.Next() {
		if opts.Limit > 0 && t.RowCount() >= opts.Limit {
			break
		}
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", t.RowCount()+1, err)
		}
		for i, v := range values {
			values[i] = cellValue(v)
		}
		if err := t.AddRow(values...); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	slog.Debug("sql query complete", "columns", len(names), "rows", t.RowCount(), "elapsed", time.Since(start))
	return t, nil
}

func cellValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}
