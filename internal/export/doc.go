// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package export serializes derived views to delimited text and spreadsheets.

Every view is first converted to a Table (column names plus typed cell
values) by one of the From* adapters. A Table can then be written as:

  - CSV: header row followed by one row per record, UTF-8
  - a single-sheet xlsx workbook
  - a multi-sheet xlsx workbook, one sheet per NamedTable

Sheet names are cut to 31 characters and stripped of characters the format
forbids. Column widths are the longest rendered value plus two, capped by
the exporter's maximum width. Numbers are stored as numeric cells.

SummaryReport assembles the six-sheet report: Summary, Revenue_by_Category,
Revenue_by_Region, Revenue_by_Segment, Top_Products and Category_Performance.
*/
package export
