// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/salesdash/internal/export"
	"github.com/tomtom215/salesdash/internal/logging"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	salesExportPrefix  = "sales_data"
	reportExportPrefix = "summary_report"
	salesSheetName     = "Sales Data"
)

// ExportSalesCSV godoc
// @Summary Download filtered sales rows as CSV
// @Tags Export
// @Produce text/csv
// @Param date_range query string false "Date range preset"
// @Success 200 {file} file
// @Failure 404 {object} models.APIResponse "No rows match the filters"
// @Router /export/sales.csv [get]
func (h *Handler) ExportSalesCSV(w http.ResponseWriter, r *http.Request) {
	h.exportSales(w, r, "csv", contentTypeCSV, export.WriteCSV)
}

// ExportSalesXLSX godoc
// @Summary Download filtered sales rows as a spreadsheet
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date_range query string false "Date range preset"
// @Success 200 {file} file
// @Failure 404 {object} models.APIResponse "No rows match the filters"
// @Router /export/sales.xlsx [get]
func (h *Handler) ExportSalesXLSX(w http.ResponseWriter, r *http.Request) {
	writer := h.xlsxWriter()
	h.exportSales(w, r, "xlsx", contentTypeXLSX, func(out io.Writer, t export.Table) error {
		return writer.WriteSheet(out, salesSheetName, t)
	})
}

func (h *Handler) exportSales(w http.ResponseWriter, r *http.Request, ext, contentType string, write func(io.Writer, export.Table) error) {
	if !h.requireAnalytics(w, r) {
		return
	}
	filter, verr := h.parseFilter(r)
	if verr != nil {
		respondValidation(w, verr)
		return
	}
	rows, err := h.analytics.SalesData(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, "Failed to load sales data", err)
		return
	}
	table := export.FromSales(rows)
	if table.Empty() {
		respondError(w, r, http.StatusNotFound, ErrCodeNoData, "No data to export for the selected filters", nil)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, table); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to render export", err)
		return
	}
	sendAttachment(w, r, export.FileName(salesExportPrefix, ext, h.now()), contentType, buf.Bytes())
}

// ExportReport godoc
// @Summary Download the multi-sheet summary report
// @Description Sheets cover the selected date range only. Empty views become header-only sheets.
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date_range query string false "Date range preset"
// @Success 200 {file} file
// @Router /export/report.xlsx [get]
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	data, ok := h.renderReport(w, r)
	if !ok {
		return
	}
	sendAttachment(w, r, export.FileName(reportExportPrefix, "xlsx", h.now()), contentTypeXLSX, data)
}

// SaveReport godoc
// @Summary Write the summary report to the export directory
// @Tags Export
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=map[string]string}
// @Router /export/report [post]
func (h *Handler) SaveReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	data, ok := h.renderReport(w, r)
	if !ok {
		return
	}
	name := export.FileName(reportExportPrefix, "xlsx", h.now())
	path, err := export.SaveToDir(h.cfg.Export.Dir, name, func(out io.Writer) error {
		_, err := out.Write(data)
		return err
	})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to save report", err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("path", path).Int("bytes", len(data)).Msg("Summary report saved")
	respondSuccess(w, map[string]string{"path": path}, start)
}

func (h *Handler) renderReport(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if !h.requireAnalytics(w, r) {
		return nil, false
	}
	filter, verr := h.parseFilter(r)
	if verr != nil {
		respondValidation(w, verr)
		return nil, false
	}
	sheets, err := export.SummaryReport(r.Context(), h.analytics, filter, h.cfg.API.ReportTopN)
	if err != nil {
		respondStoreError(w, r, "Failed to build summary report", err)
		return nil, false
	}
	var buf bytes.Buffer
	if err := h.xlsxWriter().WriteSheets(&buf, sheets); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to render report", err)
		return nil, false
	}
	return buf.Bytes(), true
}

func (h *Handler) xlsxWriter() export.XLSXWriter {
	return export.XLSXWriter{MaxColumnWidth: h.cfg.Export.MaxColumnWidth}
}

func sendAttachment(w http.ResponseWriter, r *http.Request, name, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("file", name).Msg("Export download interrupted")
	}
}
