package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

var (
	// ErrDownloadFailed means the network transfer did not complete.
	ErrDownloadFailed = errors.New("download failed")
	// ErrInsufficientSpace means the local disk write failed.
	ErrInsufficientSpace = errors.New("insufficient space")
)

// errTrackingWriter remembers the first write error, so a failed io.Copy can
// be attributed to the disk rather than the network.
type errTrackingWriter struct {
	w   io.Writer
	err error
}

func (t *errTrackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

func (a *implAcquirer) Fetch(ctx context.Context, audioURL, destPath string) (int64, error) {
	if info, err := os.Stat(destPath); err == nil {
		a.logger.Info(ctx, "Audio already downloaded: %s (%d bytes)", destPath, info.Size())
		return info.Size(), nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return 0, fmt.Errorf("%w: create download dir: %w", ErrInsufficientSpace, err)
	}

	a.logger.Info(ctx, "Downloading %s", audioURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: create request: %w", ErrDownloadFailed, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: HTTP %d", ErrDownloadFailed, resp.StatusCode)
	}

	// Write to a temp file and rename on success so a partial download never
	// appears complete at the destination path.
	tmpPath := destPath + ".part"
	size, err := a.writeTemp(tmpPath, resp.Body)
	if err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			a.logger.Warn(ctx, "Failed to remove partial download %s: %v", tmpPath, rmErr)
		}
		return 0, err
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: finalize download: %w", ErrInsufficientSpace, err)
	}

	a.logger.Info(ctx, "Downloaded %s (%d bytes)", destPath, size)
	return size, nil
}

func (a *implAcquirer) writeTemp(tmpPath string, body io.Reader) (int64, error) {
	f, err := os.Create(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("%w: create file: %w", ErrInsufficientSpace, err)
	}

	tracked := &errTrackingWriter{w: f}
	size, copyErr := io.Copy(tracked, body)
	closeErr := f.Close()

	switch {
	case tracked.err != nil:
		return 0, fmt.Errorf("%w: write file: %w", ErrInsufficientSpace, tracked.err)
	case copyErr != nil:
		return 0, fmt.Errorf("%w: transfer interrupted: %w", ErrDownloadFailed, copyErr)
	case closeErr != nil:
		return 0, fmt.Errorf("%w: close file: %w", ErrInsufficientSpace, closeErr)
	}

	return size, nil
}
