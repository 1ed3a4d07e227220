package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/projtime/projtime/internal/errs"
	"github.com/projtime/projtime/internal/model"
	"github.com/projtime/projtime/internal/report"
)

func sampleRows() ([]model.ProjectFileWithDuration, time.Duration) {
	t0 := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	rows := []model.ProjectFileWithDuration{
		{
			ProjectFile: model.ProjectFile{Name: "song v1.als", CreatedAt: t0, ModifiedAt: t0.Add(30 * time.Second)},
			StartTime:   t0,
			Duration:    10 * time.Minute,
		},
		{
			ProjectFile: model.ProjectFile{Name: "song v2.als", CreatedAt: t0.Add(10 * time.Minute), ModifiedAt: t0.Add(10*time.Minute + 5*time.Second)},
			StartTime:   t0.Add(10 * time.Minute),
			Duration:    5 * time.Second,
		},
	}
	return rows, 10*time.Minute + 5*time.Second
}

func TestTable(t *testing.T) {
	rows, total := sampleRows()
	var buf bytes.Buffer
	if err := report.Table(&buf, rows, total); err != nil {
		t.Fatalf("Table: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Start time            Duration      Name\n") {
		t.Errorf("Table header missing, got %q", out)
	}
	for _, want := range []string{"0:10:00.000", "0:00:05.000", "song v1.als", "song v2.als"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n\nTotal project time\n0:10:05.000\n") {
		t.Errorf("Table total block wrong:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Table(&buf, nil, 0); err != nil {
		t.Fatalf("Table: %v", err)
	}
	if buf.String() != "No project files found\n" {
		t.Errorf("Table empty output = %q", buf.String())
	}
}

func TestCSV(t *testing.T) {
	rows, total := sampleRows()
	var buf bytes.Buffer
	if err := report.CSV(&buf, rows, total); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("CSV produced %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != "start_time,duration,duration_ms,name" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if !strings.Contains(lines[1], ",0:10:00.000,600000,") {
		t.Errorf("CSV first row = %q", lines[1])
	}
	if lines[3] != "total,0:10:05.000,605000," {
		t.Errorf("CSV total row = %q", lines[3])
	}
}

func TestCSVEscaping(t *testing.T) {
	t0 := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	rows := []model.ProjectFileWithDuration{{
		ProjectFile: model.ProjectFile{Name: `take 1, "final".als`, CreatedAt: t0, ModifiedAt: t0},
		StartTime:   t0,
		Duration:    time.Second,
	}}

	var buf bytes.Buffer
	if err := report.CSV(&buf, rows, time.Second); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if !strings.Contains(buf.String(), `"take 1, ""final"".als"`) {
		t.Errorf("CSV escaping wrong:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	rows, total := sampleRows()
	var buf bytes.Buffer
	if err := report.JSON(&buf, rows, total); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var got struct {
		Files []struct {
			Duration   string `json:"duration"`
			DurationMS int64  `json:"duration_ms"`
			Name       string `json:"name"`
		} `json:"files"`
		Total   string `json:"total"`
		TotalMS int64  `json:"total_ms"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling JSON output: %v", err)
	}
	if len(got.Files) != 2 {
		t.Fatalf("JSON files = %d, want 2", len(got.Files))
	}
	if got.TotalMS != 605000 || got.Total != "0:10:05.000" {
		t.Errorf("JSON total = %q/%d, want 0:10:05.000/605000", got.Total, got.TotalMS)
	}
	if got.Files[0].DurationMS+got.Files[1].DurationMS != got.TotalMS {
		t.Errorf("JSON row durations do not sum to total")
	}
}

func TestRendererFor(t *testing.T) {
	for _, format := range []string{report.FormatTable, report.FormatCSV, report.FormatJSON} {
		if _, err := report.RendererFor(format); err != nil {
			t.Errorf("RendererFor(%q): %v", format, err)
		}
	}

	_, err := report.RendererFor("yaml")
	if err == nil {
		t.Fatal("RendererFor(yaml): expected error")
	}
	if !errors.Is(err, errs.ErrUsage) {
		t.Errorf("RendererFor error = %v, want ErrUsage kind", err)
	}
}

// failWriter fails every write, simulating a closed output sink.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriteFailure(t *testing.T) {
	rows, total := sampleRows()
	err := report.Table(failWriter{}, rows, total)
	if err == nil {
		t.Fatal("Table on failing writer: expected error")
	}
	if !errors.Is(err, errs.ErrIO) {
		t.Errorf("Table error = %v, want ErrIO kind", err)
	}
}
