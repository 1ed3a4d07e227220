// Package config holds the validated run configuration for the scan
// pipeline. projtime is configured entirely on the command line; there is no
// configuration file.
package config

const (
	// DefaultDirectory is scanned when no directory argument is given.
	DefaultDirectory = "."
	// DefaultSuffix matches Ableton Live project files.
	DefaultSuffix = ".als"
	// DefaultMaxMinutes is the largest gap between two saves that still
	// counts as continuous work. Values <= 0 disable the session-boundary
	// heuristic entirely.
	DefaultMaxMinutes int64 = 60
)

// Config carries already-validated settings into the pipeline. The pipeline
// has no knowledge of flag syntax; cmd builds one of these from parsed flags.
type Config struct {
	// Directory is the directory scanned for project files (non-recursive).
	Directory string
	// Suffix filters directory entries by name (case-sensitive suffix
	// match). Empty matches every file.
	Suffix string
	// MaxMinutesBetweenSaves is the session-boundary threshold described on
	// DefaultMaxMinutes.
	MaxMinutesBetweenSaves int64
}
