// Package scan enumerates project-file snapshots in a directory and orders
// them by creation time.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/djherbis/times"

	"github.com/projtime/projtime/internal/errs"
	"github.com/projtime/projtime/internal/model"
)

// Dir returns a ProjectFile for every direct child of dir whose name ends
// with suffix (case-sensitive; an empty suffix matches every file).
// Subdirectories are skipped. The result carries no order guarantee.
//
// A single unreadable file aborts the whole scan: a snapshot missing from
// the sequence would skew every downstream sum, so partial results are never
// returned.
func Dir(dir, suffix string) ([]model.ProjectFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.IO(err, "reading directory %s", dir)
	}

	var files []model.ProjectFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ts, err := times.Stat(path)
		if err != nil {
			return nil, errs.IO(err, "reading metadata for %s", path)
		}
		if !ts.HasBirthTime() {
			// Never substitute the modification time here: a wrong start
			// timestamp corrupts every gap computed from it.
			return nil, errs.IOf("creation time unavailable for %s (not reported by this filesystem)", path)
		}
		files = append(files, model.ProjectFile{
			Name:       entry.Name(),
			CreatedAt:  ts.BirthTime(),
			ModifiedAt: ts.ModTime(),
		})
	}
	return files, nil
}

// SortByCreation orders files by creation time ascending, in place. Files
// with identical creation times keep their relative enumeration order.
func SortByCreation(files []model.ProjectFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].CreatedAt.Before(files[j].CreatedAt)
	})
}
