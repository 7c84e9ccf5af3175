//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	flayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"modalkit/internal/export"
	"modalkit/internal/gridview"
	"modalkit/internal/result"
	"modalkit/internal/sysopen"
)

// gridBinding drives one grid instance: the original backing table, the
// currently displayed subset, the live filter state and the selection that
// feeds the instance's grid_select entry.
type gridBinding struct {
	key       string
	table     gridview.Table
	displayed []gridview.Row
	filter    gridview.Filter
	mode      gridview.SelectionMode

	selRows []int
	selCol  int

	widget  *widget.Table
	counter *widget.Label
}

// buildGrids binds every supplied data sequence. Multiple sequences render as
// numbered tab pages, each with its own filter state and selection entry.
func (s *session) buildGrids() fyne.CanvasObject {
	mode := gridview.ParseSelectionMode(s.d.GridOptions.SelectionMode)
	for k := range s.d.Grids {
		t := s.d.Grids[k]
		if s.d.GridOptions.AsList {
			t = gridview.AsList(t)
		}
		b := &gridBinding{
			key:       result.GridSelectKey(k + 1),
			table:     t,
			displayed: t.Rows,
			filter:    gridview.Filter{Op: gridview.OpContains},
			mode:      mode,
		}
		if len(t.Columns) > 0 {
			b.filter.Column = t.Columns[0]
		}
		s.grids = append(s.grids, b)
	}

	if len(s.grids) == 1 {
		return s.gridPane(s.grids[0])
	}
	tabs := container.NewAppTabs()
	for k, b := range s.grids {
		tabs.Append(container.NewTabItem(fmt.Sprintf("Grid %d", k+1), s.gridPane(b)))
	}
	tabs.OnSelected = func(item *container.TabItem) {
		s.activeGrid = tabs.SelectedIndex()
	}
	return tabs
}

// gridPane renders one binding: the filter bar (unless search is hidden), the
// table widget and the results counter.
func (s *session) gridPane(b *gridBinding) fyne.CanvasObject {
	b.widget = s.gridTable(b, true)
	b.counter = widget.NewLabel(gridview.CounterText(len(b.displayed), len(b.table.Rows)))

	body := container.New(flayout.NewGridWrapLayout(fyne.NewSize(540, 260)), b.widget)
	if s.d.GridOptions.HideSearch {
		return container.NewVBox(body, b.counter)
	}

	columnSel := widget.NewSelect(b.table.Columns, nil)
	if b.filter.Column != "" {
		columnSel.SetSelected(b.filter.Column)
	}
	opSel := widget.NewSelect(gridview.OpNames(), nil)
	opSel.SetSelected(string(b.filter.Op))
	text := widget.NewEntry()
	text.SetPlaceHolder("Filter…")

	refilter := func() {
		b.filter.Column = columnSel.Selected
		b.filter.Op = gridview.Op(opSel.Selected)
		b.filter.Text = text.Text
		// always from the original backing rows, never the filtered view
		b.displayed = b.filter.Apply(b.table.Rows)
		b.selRows = nil
		s.m[b.key] = nil
		b.widget.UnselectAll()
		b.widget.Refresh()
		b.counter.SetText(gridview.CounterText(len(b.displayed), len(b.table.Rows)))
	}
	columnSel.OnChanged = func(string) { refilter() }
	opSel.OnChanged = func(string) { refilter() }
	text.OnChanged = func(string) { refilter() }

	bar := container.NewBorder(nil, nil, container.NewHBox(columnSel, opSel), nil, text)
	return container.NewVBox(bar, body, b.counter)
}

// gridTable builds the Fyne table over the binding's displayed rows. Live
// tables capture selections per the configured mode; the Explore viewer uses
// a non-live copy.
func (s *session) gridTable(b *gridBinding, live bool) *widget.Table {
	t := widget.NewTable(
		func() (int, int) { return len(b.displayed), len(b.table.Columns) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row < 0 || id.Row >= len(b.displayed) || id.Col < 0 || id.Col >= len(b.table.Columns) {
				lbl.SetText("")
				return
			}
			lbl.SetText(gridview.CellString(b.displayed[id.Row][b.table.Columns[id.Col]]))
		},
	)
	t.ShowHeaderRow = true
	t.CreateHeader = func() fyne.CanvasObject {
		h := widget.NewLabel("")
		h.TextStyle = fyne.TextStyle{Bold: true}
		return h
	}
	t.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		lbl := o.(*widget.Label)
		if id.Col >= 0 && id.Col < len(b.table.Columns) {
			lbl.SetText(b.table.Columns[id.Col])
		} else {
			lbl.SetText("")
		}
	}
	for i := range b.table.Columns {
		t.SetColumnWidth(i, 140)
	}

	if live && b.mode != gridview.SelectNone {
		t.OnSelected = func(id widget.TableCellID) {
			switch b.mode {
			case gridview.SelectSingleCell:
				b.selRows = []int{id.Row}
				b.selCol = id.Col
			case gridview.SelectSingleRow:
				b.selRows = []int{id.Row}
				b.selCol = 0
			case gridview.SelectMultiRow:
				if i := slices.Index(b.selRows, id.Row); i >= 0 {
					b.selRows = slices.Delete(b.selRows, i, i+1)
				} else {
					b.selRows = append(b.selRows, id.Row)
				}
			}
			s.m[b.key] = gridview.SelectionPayload(b.mode, b.displayed, b.table.Columns, b.selRows, b.selCol)
		}
		t.OnUnselected = func(widget.TableCellID) {
			if b.mode != gridview.SelectMultiRow {
				return
			}
			s.m[b.key] = gridview.SelectionPayload(b.mode, b.displayed, b.table.Columns, b.selRows, b.selCol)
		}
	}
	return t
}

func (s *session) currentGrid() *gridBinding {
	if len(s.grids) == 0 {
		return nil
	}
	if s.activeGrid >= 0 && s.activeGrid < len(s.grids) {
		return s.grids[s.activeGrid]
	}
	return s.grids[0]
}

// saveGrid exports the currently displayed rows of the active grid to a
// caller-chosen path, CSV by default and PDF for a .pdf extension, then hands
// the file to the system opener. Export failures surface in a secondary
// modal and never disturb the primary dialog.
func (s *session) saveGrid() {
	b := s.currentGrid()
	if b == nil {
		return
	}
	fs := dialog.NewFileSave(func(uri fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.win)
			return
		}
		if uri == nil {
			return
		}
		path := uri.URI().Path()
		uri.Close()

		shown := gridview.Table{Columns: b.table.Columns, Rows: b.displayed}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			err = export.WritePDF(shown, path, export.PDFOptions{Title: s.d.Title})
		} else {
			err = export.WriteCSV(shown, path)
		}
		if err != nil {
			s.log.Error("grid export failed", slog.String("path", path), slog.Any("err", err))
			dialog.ShowError(err, s.win)
			return
		}
		s.log.Info("grid exported", slog.String("path", path), slog.Int("rows", len(b.displayed)))
		if err := sysopen.Open(path); err != nil {
			s.log.Warn("open exported file failed", slog.Any("err", err))
		}
	}, s.win)
	fs.SetFileName("export.csv")
	fs.Show()
}

// exploreGrid opens the active grid's full backing rows in an independent
// read-only viewer window. It does not touch the primary grid or the result
// map.
func (s *session) exploreGrid() {
	b := s.currentGrid()
	if b == nil {
		return
	}
	full := &gridBinding{table: b.table, displayed: b.table.Rows, mode: gridview.SelectNone}
	title := s.d.Title
	if title == "" {
		title = "Dialog"
	}
	w := s.app.NewWindow(title + " - Explore")
	w.SetContent(container.NewStack(s.gridTable(full, false)))
	w.Resize(fyne.NewSize(640, 420))
	w.Show()
}
