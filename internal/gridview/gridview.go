/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package gridview holds the toolkit-independent core of the grid sub-engine:
// the backing table model, the live filter predicate compiler, the results
// counter and the selection payload rules. The Fyne binding in internal/ui
// drives these over a widget table.
package gridview

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Row is one record of tabular data.
type Row = map[string]any

// Table is an ordered data sequence with an explicit column order.
// Filtering always runs over Rows, never over an already-filtered view.
type Table struct {
	Columns []string `yaml:"columns" json:"columns"`
	Rows    []Row    `yaml:"rows" json:"rows"`
}

// Normalize infers the column order when none was given. Column order cannot
// be recovered from Go maps, so inferred columns are sorted by name.
func (t *Table) Normalize() {
	if len(t.Columns) == 0 && len(t.Rows) > 0 {
		cols := make([]string, 0, len(t.Rows[0]))
		for k := range t.Rows[0] {
			cols = append(cols, k)
		}
		sort.Strings(cols)
		t.Columns = cols
	}
}

// CellString renders one cell value for display, filtering and CSV export.
func CellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// AsList converts a single row into a two-column Name/Value table, one line
// per field. Used when the caller asks for the list transform.
func AsList(t Table) Table {
	out := Table{Columns: []string{"Name", "Value"}}
	if len(t.Rows) == 0 {
		return out
	}
	r := t.Rows[0]
	for _, c := range t.Columns {
		out.Rows = append(out.Rows, Row{"Name": c, "Value": CellString(r[c])})
	}
	return out
}

// Op is a filter operator. The operator set and its exact matching semantics
// are part of the dialog contract.
type Op string

const (
	OpContains    Op = "contains"
	OpNotContains Op = "not contains"
	OpStartsWith  Op = "starts with"
	OpEndsWith    Op = "ends with"
	OpEquals      Op = "equals"
	OpNotEquals   Op = "not equals"
)

// Ops lists the operators in presentation order for the filter dropdown.
func Ops() []Op {
	return []Op{OpContains, OpNotContains, OpStartsWith, OpEndsWith, OpEquals, OpNotEquals}
}

// OpNames renders Ops as plain strings for widget option lists.
func OpNames() []string {
	ops := Ops()
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = string(o)
	}
	return out
}

// Filter is the current predicate of one grid instance.
type Filter struct {
	Column string
	Op     Op
	Text   string
}

// Apply computes the displayed subset from the original backing rows.
// Matching is case-sensitive; empty filter text selects everything.
func (f Filter) Apply(src []Row) []Row {
	if strings.TrimSpace(f.Text) == "" || f.Column == "" {
		return src
	}
	match := f.matcher()
	out := make([]Row, 0, len(src))
	for _, r := range src {
		if match(CellString(r[f.Column])) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matcher() func(string) bool {
	text := f.Text
	switch f.Op {
	case OpContains, OpNotContains:
		// literal substring semantics, the filter text is never a pattern
		re := regexp.MustCompile(regexp.QuoteMeta(text))
		if f.Op == OpContains {
			return re.MatchString
		}
		return func(s string) bool { return !re.MatchString(s) }
	case OpStartsWith:
		return func(s string) bool { return strings.HasPrefix(s, text) }
	case OpEndsWith:
		return func(s string) bool { return strings.HasSuffix(s, text) }
	case OpEquals:
		return func(s string) bool { return s == text }
	case OpNotEquals:
		return func(s string) bool { return s != text }
	default:
		return func(string) bool { return true }
	}
}

// CounterText renders the results counter: "N / M Results" while a filter
// narrows the view, "M Results" otherwise.
func CounterText(shown, total int) string {
	if shown == total {
		return fmt.Sprintf("%d Results", total)
	}
	return fmt.Sprintf("%d / %d Results", shown, total)
}

// SelectionMode governs whether and how grid selections are captured.
type SelectionMode string

const (
	SelectNone       SelectionMode = "none"
	SelectSingleCell SelectionMode = "singleCell"
	SelectSingleRow  SelectionMode = "singleRow"
	SelectMultiRow   SelectionMode = "multiRow"
)

// ParseSelectionMode maps a spec string onto a SelectionMode, defaulting to
// SelectNone for anything unrecognized.
func ParseSelectionMode(s string) SelectionMode {
	switch SelectionMode(strings.TrimSpace(s)) {
	case SelectSingleCell:
		return SelectSingleCell
	case SelectSingleRow:
		return SelectSingleRow
	case SelectMultiRow:
		return SelectMultiRow
	default:
		return SelectNone
	}
}

// SelectionPayload computes the grid_select value for the current selection
// over the displayed rows. rowIdx holds displayed-row indices in selection
// order; colIdx addresses the cell column for SelectSingleCell. Out-of-range
// indices are ignored. No selection yields nil.
func SelectionPayload(mode SelectionMode, displayed []Row, cols []string, rowIdx []int, colIdx int) any {
	valid := rowIdx[:0:0]
	for _, i := range rowIdx {
		if i >= 0 && i < len(displayed) {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	switch mode {
	case SelectSingleCell:
		if colIdx < 0 || colIdx >= len(cols) {
			return nil
		}
		return CellString(displayed[valid[0]][cols[colIdx]])
	case SelectSingleRow:
		return displayed[valid[0]]
	case SelectMultiRow:
		out := make([]Row, 0, len(valid))
		for _, i := range valid {
			out = append(out, displayed[i])
		}
		return out
	default:
		return nil
	}
}
