/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package datasource

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	data := "name,city\nAlice,Berlin\nBob,Oslo\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tab, err := FromCSV(path)
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"name", "city"}) {
		t.Fatalf("columns = %v", tab.Columns)
	}
	if len(tab.Rows) != 2 || tab.Rows[1]["city"] != "Oslo" {
		t.Fatalf("rows = %v", tab.Rows)
	}
}

func TestFromCSVErrors(t *testing.T) {
	if _, err := FromCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	empty := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := FromCSV(empty); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestFromSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE people (name TEXT, age INTEGER)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO people VALUES ('Alice', 36), ('Bob', 41)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	tab, err := FromSQLite(context.Background(), path, `SELECT name, age FROM people ORDER BY name`)
	if err != nil {
		t.Fatalf("FromSQLite: %v", err)
	}
	if !reflect.DeepEqual(tab.Columns, []string{"name", "age"}) {
		t.Fatalf("columns = %v", tab.Columns)
	}
	if len(tab.Rows) != 2 || tab.Rows[0]["name"] != "Alice" {
		t.Fatalf("rows = %v", tab.Rows)
	}
}

// TestFromPostgres runs only when a scratch database is provided via
// MK_TEST_PG_DSN.
func TestFromPostgres(t *testing.T) {
	dsn := os.Getenv("MK_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("MK_TEST_PG_DSN not set")
	}
	tab, err := FromPostgres(context.Background(), dsn, `SELECT 1 AS one`)
	if err != nil {
		t.Fatalf("FromPostgres: %v", err)
	}
	if len(tab.Rows) != 1 {
		t.Fatalf("rows = %v", tab.Rows)
	}
}
