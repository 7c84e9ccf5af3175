/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package datasource loads tabular data for grid dialogs from CSV files and
// SQL queries. Both database paths go through database/sql: SQLite with the
// cgo-free modernc driver, Postgres with the pgx stdlib driver.
package datasource

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"modalkit/internal/gridview"
)

// FromCSV reads path into a table. The first record is the header; every row
// value is a string.
func FromCSV(path string) (gridview.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return gridview.Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	recs, err := r.ReadAll()
	if err != nil {
		return gridview.Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(recs) == 0 {
		return gridview.Table{}, fmt.Errorf("csv %s is empty", path)
	}
	t := gridview.Table{Columns: recs[0]}
	for _, rec := range recs[1:] {
		row := make(gridview.Row, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(rec) {
				row[c] = rec[i]
			} else {
				row[c] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// FromSQLite runs query against the SQLite database at path.
func FromSQLite(ctx context.Context, path, query string) (gridview.Table, error) {
	return fromSQL(ctx, "sqlite", path, query)
}

// FromPostgres runs query against the Postgres database at dsn.
func FromPostgres(ctx context.Context, dsn, query string) (gridview.Table, error) {
	return fromSQL(ctx, "pgx", dsn, query)
}

func fromSQL(ctx context.Context, driver, dsn, query string) (gridview.Table, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return gridview.Table{}, fmt.Errorf("open %s: %w", driver, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return gridview.Table{}, fmt.Errorf("query %s: %w", driver, err)
	}
	defer rows.Close()
	return tableFromRows(rows)
}

func tableFromRows(rows *sql.Rows) (gridview.Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return gridview.Table{}, fmt.Errorf("columns: %w", err)
	}
	t := gridview.Table{Columns: cols}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return gridview.Table{}, fmt.Errorf("scan: %w", err)
		}
		row := make(gridview.Row, len(cols))
		for i, c := range cols {
			v := vals[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[c] = v
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return gridview.Table{}, fmt.Errorf("iterate: %w", err)
	}
	return t, nil
}
