package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasmeira/rosary-digest/internal/logger"
)

type implManager struct {
	dir    string
	logger logger.Logger
}

// New creates a Manager over the given artifact directory.
func New(dir string, log logger.Logger) Manager {
	return &implManager{
		dir:    dir,
		logger: log,
	}
}

func (m *implManager) RemoveFiles(ctx context.Context, files []LocalFile) int {
	removed := 0
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			m.logger.Warn(ctx, "Cleanup: remove %s %s: %v", f.Category, f.Path, err)
			continue
		}
		m.logger.Debug(ctx, "Cleanup: removed %s %s", f.Category, f.Path)
		removed++
	}
	return removed
}

func (m *implManager) Sweep(ctx context.Context, olderThan time.Duration) int {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.logger.Warn(ctx, "Cleanup: read dir %s: %v", m.dir, err)
		return 0
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			m.logger.Warn(ctx, "Cleanup: stat %s: %v", e.Name(), err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(m.dir, e.Name())
		if err := os.Remove(path); err != nil {
			m.logger.Warn(ctx, "Cleanup: remove %s: %v", path, err)
			continue
		}
		m.logger.Debug(ctx, "Cleanup: swept %s (age %s)", path, time.Since(info.ModTime()).Round(time.Hour))
		removed++
	}

	m.logger.Info(ctx, "Sweep removed %d file(s) older than %s from %s", removed, olderThan, m.dir)
	return removed
}

func (m *implManager) StorageInfo(ctx context.Context) (*StorageInfo, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &StorageInfo{ByExtension: map[string]int{}}, nil
		}
		return nil, err
	}

	info := &StorageInfo{ByExtension: map[string]int{}}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			m.logger.Warn(ctx, "Cleanup: stat %s: %v", e.Name(), err)
			continue
		}
		info.Files++
		info.TotalBytes += fi.Size()
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == "" {
			ext = "(none)"
		}
		info.ByExtension[ext]++
	}
	return info, nil
}
