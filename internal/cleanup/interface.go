package cleanup

import (
	"context"
	"time"
)

// Manager removes pipeline artifacts. Cleanup is best-effort by contract:
// failures are logged and never propagate, so a delivered summary is never
// rolled back over a leftover file.
type Manager interface {
	// RemoveFiles deletes the given artifacts and reports how many were
	// actually removed.
	RemoveFiles(ctx context.Context, files []LocalFile) int
	// Sweep deletes artifacts in the managed directory older than the given
	// age and reports how many were removed.
	Sweep(ctx context.Context, olderThan time.Duration) int
	// StorageInfo reports what currently sits in the managed directory.
	StorageInfo(ctx context.Context) (*StorageInfo, error)
}

// Category classifies a pipeline artifact.
type Category string

const (
	CategoryAudio      Category = "audio"
	CategoryTranscript Category = "transcript"
	CategorySummary    Category = "summary"
)

// LocalFile is one artifact produced during a run.
type LocalFile struct {
	Path     string
	Category Category
}

// StorageInfo summarizes the managed directory.
type StorageInfo struct {
	Files       int
	TotalBytes  int64
	ByExtension map[string]int
}
