package model

import "time"

// ProjectFile is one saved snapshot of a project: a single file identified by
// its base name and the filesystem's creation and modification timestamps.
type ProjectFile struct {
	Name       string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// ProjectFileWithDuration is a ProjectFile plus the estimated time spent on
// that snapshot. Produced once by the estimator and not modified afterwards.
type ProjectFileWithDuration struct {
	ProjectFile
	StartTime time.Time // equal to CreatedAt
	Duration  time.Duration
}
