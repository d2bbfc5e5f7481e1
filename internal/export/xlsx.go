// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/metrics"
)

// MaxSheetNameLength is the longest sheet name a workbook accepts.
const MaxSheetNameLength = 31

// DefaultMaxColumnWidth caps auto-sized columns.
const DefaultMaxColumnWidth = 50

// Sentinel errors.
var (
	ErrNoSheets       = errors.New("no sheets to write")
	ErrDuplicateSheet = errors.New("duplicate sheet name")
)

const defaultSheet = "Sheet1"

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SheetName makes name acceptable as a sheet name: forbidden characters
// become underscores and the result is cut to MaxSheetNameLength runes.
func SheetName(name string) string {
	name = sheetNameReplacer.Replace(strings.TrimSpace(name))
	if name == "" {
		name = "Data"
	}
	if utf8.RuneCountInString(name) > MaxSheetNameLength {
		name = string([]rune(name)[:MaxSheetNameLength])
	}
	return name
}

// XLSXWriter writes tables as xlsx workbooks.
type XLSXWriter struct {
	// MaxColumnWidth caps column widths. Values below 1 select DefaultMaxColumnWidth.
	MaxColumnWidth int
}

// WriteXLSX writes a single-sheet workbook using DefaultMaxColumnWidth.
func WriteXLSX(w io.Writer, sheet string, t Table) error {
	return XLSXWriter{}.WriteSheets(w, []NamedTable{{Name: sheet, Table: t}})
}

// WriteXLSXSheets writes one sheet per table using DefaultMaxColumnWidth.
func WriteXLSXSheets(w io.Writer, sheets []NamedTable) error {
	return XLSXWriter{}.WriteSheets(w, sheets)
}

// WriteSheet writes a single-sheet workbook.
func (x XLSXWriter) WriteSheet(w io.Writer, sheet string, t Table) error {
	return x.WriteSheets(w, []NamedTable{{Name: sheet, Table: t}})
}

// WriteSheets writes one sheet per table, in order. The first sheet is active.
func (x XLSXWriter) WriteSheets(w io.Writer, sheets []NamedTable) (err error) {
	if len(sheets) == 0 {
		return ErrNoSheets
	}
	maxWidth := x.MaxColumnWidth
	if maxWidth < 1 {
		maxWidth = DefaultMaxColumnWidth
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Failed to close workbook")
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	seen := make(map[string]bool, len(sheets))
	for i, s := range sheets {
		name := SheetName(s.Name)
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateSheet, name)
		}
		seen[key] = true

		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeTable(f, name, s.Table, headerStyle, maxWidth); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	cw := &countingWriter{w: w}
	if err := f.Write(cw); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	metrics.ExportBytes.WithLabelValues("xlsx").Add(float64(cw.n))
	return nil
}

func writeTable(f *excelize.File, sheet string, t Table, headerStyle, maxWidth int) error {
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if len(t.Columns) > 0 {
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	for col, width := range columnWidths(t, maxWidth) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns min(longest rendered value + 2, maxWidth) per column.
func columnWidths(t Table, maxWidth int) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i >= len(row) {
				break
			}
			if n := utf8.RuneCountInString(formatCell(row[i])); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i]+2, maxWidth)
	}
	return widths
}
