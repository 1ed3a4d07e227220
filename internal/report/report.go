// Package report renders the per-snapshot estimates and the project total.
//
// Every renderer builds the full report in memory and hands it to the sink
// in a single write, so a failing sink never produces partial output.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/projtime/projtime/internal/errs"
	"github.com/projtime/projtime/internal/model"
	"github.com/projtime/projtime/internal/timecalc"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// startTimeLayout is the classic ls-style listing: weekday, month,
// space-padded day, time of day, rendered in the local timezone.
const startTimeLayout = "Mon Jan _2 15:04:05"

// Renderer writes a complete report for rows and their total to w.
type Renderer func(w io.Writer, rows []model.ProjectFileWithDuration, total time.Duration) error

// RendererFor maps a format name to its Renderer.
func RendererFor(format string) (Renderer, error) {
	switch format {
	case FormatTable:
		return Table, nil
	case FormatCSV:
		return CSV, nil
	case FormatJSON:
		return JSON, nil
	default:
		return nil, errs.Usage("unknown format %q (expected table, csv, or json)", format)
	}
}

// Table writes the default human-readable report: a header, one row per
// snapshot, and the project total.
func Table(w io.Writer, rows []model.ProjectFileWithDuration, total time.Duration) error {
	var buf bytes.Buffer
	if len(rows) == 0 {
		buf.WriteString("No project files found\n")
		return flush(w, &buf)
	}

	fmt.Fprintf(&buf, "%-21s %-13s %s\n", "Start time", "Duration", "Name")
	for _, r := range rows {
		fmt.Fprintf(&buf, "%-21s %-13s %s\n",
			r.StartTime.Local().Format(startTimeLayout),
			timecalc.FormatDuration(r.Duration),
			r.Name)
	}
	fmt.Fprintf(&buf, "\nTotal project time\n%s\n", timecalc.FormatDuration(total))
	return flush(w, &buf)
}

// CSV writes one line per snapshot plus a trailing total row.
func CSV(w io.Writer, rows []model.ProjectFileWithDuration, total time.Duration) error {
	var buf bytes.Buffer
	buf.WriteString("start_time,duration,duration_ms,name\n")
	for _, r := range rows {
		fmt.Fprintf(&buf, "%s,%s,%d,%s\n",
			csvEscape(r.StartTime.Format(time.RFC3339)),
			timecalc.FormatDuration(r.Duration),
			r.Duration.Milliseconds(),
			csvEscape(r.Name))
	}
	fmt.Fprintf(&buf, "total,%s,%d,\n",
		timecalc.FormatDuration(total), total.Milliseconds())
	return flush(w, &buf)
}

type jsonRow struct {
	StartTime  time.Time `json:"start_time"`
	Duration   string    `json:"duration"`
	DurationMS int64     `json:"duration_ms"`
	Name       string    `json:"name"`
}

type jsonReport struct {
	Files   []jsonRow `json:"files"`
	Total   string    `json:"total"`
	TotalMS int64     `json:"total_ms"`
}

// JSON writes the report as an indented JSON document.
func JSON(w io.Writer, rows []model.ProjectFileWithDuration, total time.Duration) error {
	out := jsonReport{
		Files:   make([]jsonRow, 0, len(rows)),
		Total:   timecalc.FormatDuration(total),
		TotalMS: total.Milliseconds(),
	}
	for _, r := range rows {
		out.Files = append(out.Files, jsonRow{
			StartTime:  r.StartTime,
			Duration:   timecalc.FormatDuration(r.Duration),
			DurationMS: r.Duration.Milliseconds(),
			Name:       r.Name,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errs.IO(err, "encoding JSON report")
	}
	var buf bytes.Buffer
	buf.Write(data)
	buf.WriteByte('\n')
	return flush(w, &buf)
}

// csvEscape quotes a field when it contains a comma, quote, or newline.
// Internal double quotes are doubled.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func flush(w io.Writer, buf *bytes.Buffer) error {
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errs.IO(err, "writing report")
	}
	return nil
}
