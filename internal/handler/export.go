// Package handler: export.go implements GET /trips/{tripID}/export.
// Returns the rendered itinerary as a flat table, one row per item.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"date", "weekday", "period", "day_number",
	"activity_id", "kind", "summary", "starts_at", "ends_at",
	"duration", "created_by", "travelers",
}

// GetExport implements GET /trips/{tripID}/export.
// It accepts the itinerary filters. Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	params, err := bindExportParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	sel, err := params.Selection()
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	format := strings.ToLower(valueOf(params.Format))
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(fmt.Sprintf("unsupported format %q", format)))
		return
	}

	rows, err := s.export.Export(r.Context(), tripID, sel)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONRows(rows))
}

// buildJSONRows converts domain rows to their JSON representation.
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToJSONRow(r))
	}
	return out
}

// writeCSV encodes domain rows as CSV.
// Travelers within a row are pipe-separated ("|") to keep each item on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// domainRowToJSONRow maps a domain.ExportRow to its JSON row.
// Fields that are empty strings become nil pointers (omitempty in JSON).
func domainRowToJSONRow(r domain.ExportRow) ExportRow {
	travelers := r.Travelers
	if travelers == nil {
		travelers = []string{}
	}
	return ExportRow{
		Date:       mustParseDate(r.Date),
		Weekday:    r.Weekday,
		Period:     r.Period,
		DayNumber:  optInt(r.DayNumber),
		ActivityId: optString(r.ActivityID),
		Kind:       optString(r.Kind),
		Summary:    optString(r.Summary),
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		Duration:   optString(r.Duration),
		CreatedBy:  optString(r.CreatedBy),
		Travelers:  travelers,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Nil time pointers and a zero day number are encoded as empty strings.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	dayNumber := ""
	if r.DayNumber > 0 {
		dayNumber = strconv.Itoa(r.DayNumber)
	}
	return []string{
		r.Date,
		r.Weekday,
		r.Period,
		dayNumber,
		r.ActivityID,
		r.Kind,
		r.Summary,
		formatOptionalTime(r.StartsAt),
		formatOptionalTime(r.EndsAt),
		r.Duration,
		r.CreatedBy,
		strings.Join(r.Travelers, "|"),
	}
}

// mustParseDate parses an "2006-01-02" string into an openapi_types.Date.
// Panics on malformed input; callers are expected to pass service-generated dates.
func mustParseDate(s string) openapi_types.Date {
	t, err := time.Parse(domain.DateKeyLayout, s)
	if err != nil {
		panic("handler: malformed date from service: " + s)
	}
	return openapi_types.Date{Time: t}
}

// formatOptionalTime returns the RFC3339 representation of t in its own
// offset, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
