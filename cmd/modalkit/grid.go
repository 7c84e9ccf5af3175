/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modalkit/internal/datasource"
	"modalkit/internal/gridview"
	"modalkit/internal/spec"
	"modalkit/internal/ui"
)

var gridFlags struct {
	csvPath string
	sqlite  string
	pg      string
	query   string
	title   string
	mode    string
	asList  bool
}

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Show a grid-only dialog over a CSV file or database query",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			table gridview.Table
			err   error
		)
		switch {
		case gridFlags.csvPath != "":
			table, err = datasource.FromCSV(gridFlags.csvPath)
		case gridFlags.sqlite != "":
			if gridFlags.query == "" {
				return fmt.Errorf("--sqlite requires --query")
			}
			table, err = datasource.FromSQLite(cmd.Context(), gridFlags.sqlite, gridFlags.query)
		case gridFlags.pg != "":
			if gridFlags.query == "" {
				return fmt.Errorf("--pg requires --query")
			}
			table, err = datasource.FromPostgres(cmd.Context(), gridFlags.pg, gridFlags.query)
		default:
			return fmt.Errorf("one of --csv, --sqlite or --pg is required")
		}
		if err != nil {
			return err
		}

		title := gridFlags.title
		if title == "" {
			title = "Data"
		}
		d := &spec.Dialog{
			Title: title,
			Grid:  &table,
			GridOptions: spec.GridOptions{
				AsList:        gridFlags.asList,
				SelectionMode: gridFlags.mode,
			},
			Buttons: []spec.Button{
				{Text: "OK", IsDefault: true},
				{Text: "Cancel", IsCancel: true},
			},
		}
		m, err := ui.Show(d)
		if err != nil {
			return err
		}
		return printResult(m)
	},
}

func init() {
	gridCmd.Flags().StringVar(&gridFlags.csvPath, "csv", "", "CSV file with a header row")
	gridCmd.Flags().StringVar(&gridFlags.sqlite, "sqlite", "", "SQLite database file")
	gridCmd.Flags().StringVar(&gridFlags.pg, "pg", "", "PostgreSQL DSN")
	gridCmd.Flags().StringVar(&gridFlags.query, "query", "", "SQL query producing the grid rows")
	gridCmd.Flags().StringVar(&gridFlags.title, "title", "", "dialog title")
	gridCmd.Flags().StringVar(&gridFlags.mode, "select", "singleRow", "selection mode: none|singleCell|singleRow|multiRow")
	gridCmd.Flags().BoolVar(&gridFlags.asList, "as-list", false, "render a single row as a Name/Value list")
	rootCmd.AddCommand(gridCmd)
}
