package domain

import "fmt"

// MergeStats summarizes a single merge pass over one drop folder.
// Skipped counts entries that failed and were left behind without
// aborting their siblings.
type MergeStats struct {
	FilesCopied   int
	FilesReplaced int
	DirsCreated   int
	Skipped       int
}

// Add accumulates the counters of another stats value.
func (s *MergeStats) Add(other MergeStats) {
	s.FilesCopied += other.FilesCopied
	s.FilesReplaced += other.FilesReplaced
	s.DirsCreated += other.DirsCreated
	s.Skipped += other.Skipped
}

// Total returns the number of entries the merge touched successfully.
func (s MergeStats) Total() int {
	return s.FilesCopied + s.FilesReplaced + s.DirsCreated
}

// String renders the stats for log output.
func (s MergeStats) String() string {
	return fmt.Sprintf("%d copied, %d replaced, %d dirs created, %d skipped",
		s.FilesCopied, s.FilesReplaced, s.DirsCreated, s.Skipped)
}
