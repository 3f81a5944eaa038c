package download

import "context"

// Acquirer downloads episode audio to local storage.
type Acquirer interface {
	// Fetch streams the file at audioURL to destPath and returns its size.
	// The file only appears at destPath once it is complete.
	Fetch(ctx context.Context, audioURL, destPath string) (int64, error)
}
