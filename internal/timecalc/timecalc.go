// Package timecalc turns an ordered sequence of snapshots into per-snapshot
// time estimates.
package timecalc

import (
	"fmt"
	"time"

	"github.com/projtime/projtime/internal/model"
)

// Estimate computes the time spent on each snapshot in files, which must be
// sorted by creation time ascending, and returns the rows together with
// their sum.
//
// For every snapshot but the last, the gap until the next snapshot's
// creation is used: a save quickly followed by another save is a good proxy
// for the time spent producing it. When maxMinutes is enabled (> 0) and the
// gap exceeds it, the snapshot is treated as the end of a working session
// and its own modified-created delta is used instead, since the user likely
// stopped working right after saving. The last snapshot has no next save to
// measure against and always uses its own delta. Negative raw differences
// (clock anomalies) count as zero.
func Estimate(files []model.ProjectFile, maxMinutes int64) ([]model.ProjectFileWithDuration, time.Duration) {
	maxGap := time.Duration(maxMinutes) * time.Minute
	rows := make([]model.ProjectFileWithDuration, 0, len(files))

	var total time.Duration
	for i, f := range files {
		var d time.Duration
		if i == len(files)-1 {
			d = f.ModifiedAt.Sub(f.CreatedAt)
		} else {
			gap := files[i+1].CreatedAt.Sub(f.CreatedAt)
			if maxMinutes > 0 && gap > maxGap {
				// Session boundary: the idle part of the gap is not work.
				d = f.ModifiedAt.Sub(f.CreatedAt)
			} else {
				d = gap
			}
		}
		if d < 0 {
			d = 0
		}
		total += d
		rows = append(rows, model.ProjectFileWithDuration{
			ProjectFile: f,
			StartTime:   f.CreatedAt,
			Duration:    d,
		})
	}
	return rows, total
}

// FormatDuration formats d as H:MM:SS.mmm, hours unbounded.
func FormatDuration(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms)
}
