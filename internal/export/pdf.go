/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"modalkit/internal/gridview"
)

// PDFOptions controls the PDF table rendering. Units are millimeters.
// Built-in Helvetica keeps the output portable without font embedding.
type PDFOptions struct {
	Title     string
	FontSize  float64 // body size; header adds 1pt, defaults to 9
	Landscape bool
}

// WritePDF renders the table as a simple row-banded PDF placed at outPath.
// Long tables flow over as many pages as needed with the header repeated.
func WritePDF(t gridview.Table, outPath string, opt PDFOptions) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("no columns to export")
	}
	orient := "P"
	if opt.Landscape {
		orient = "L"
	}
	size := opt.FontSize
	if size <= 0 {
		size = 9
	}

	pdf := gofpdf.New(orient, "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	colW := usable / float64(len(t.Columns))
	rowH := size * 0.55

	header := func() {
		if opt.Title != "" {
			pdf.SetFont("Helvetica", "B", size+3)
			pdf.CellFormat(usable, rowH*1.6, opt.Title, "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", size+1)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range t.Columns {
			pdf.CellFormat(colW, rowH*1.2, c, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", size)
	}

	pdf.SetHeaderFunc(func() {})
	pdf.AddPage()
	header()

	fill := false
	pdf.SetFillColor(245, 245, 245)
	for _, row := range t.Rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}
		for _, c := range t.Columns {
			pdf.CellFormat(colW, rowH, gridview.CellString(row[c]), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
