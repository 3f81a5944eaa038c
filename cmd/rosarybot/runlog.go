package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lucasmeira/rosary-digest/internal/logger"
	"github.com/lucasmeira/rosary-digest/internal/pipeline"
)

// runLog appends one start line and one end line per run to a plain-text
// file, so a cron box keeps a history without any log infrastructure.
// A missing path disables it.
type runLog struct {
	path   string
	began  time.Time
	logger logger.Logger
}

func newRunLog(path string, log logger.Logger) *runLog {
	return &runLog{path: path, logger: log}
}

func (r *runLog) start(ctx context.Context) {
	r.began = time.Now()
	r.append(ctx, fmt.Sprintf("%s START", r.began.Format(time.RFC3339)))
}

func (r *runLog) end(ctx context.Context, res *pipeline.Result) {
	status := "OK"
	detail := string(res.State)
	if !res.Succeeded() {
		status = "FAIL"
		detail = fmt.Sprintf("%s: %v", res.Stage, res.Err)
	}
	if res.Episode != nil {
		detail = fmt.Sprintf("day %d, %s", res.Episode.Day, detail)
	}
	r.append(ctx, fmt.Sprintf("%s END %s (%s) after %s",
		time.Now().Format(time.RFC3339), status, detail, time.Since(r.began).Round(time.Second)))
}

func (r *runLog) append(ctx context.Context, line string) {
	if r.path == "" {
		return
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		r.logger.Warn(ctx, "Run log: %v", err)
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, line); err != nil {
		r.logger.Warn(ctx, "Run log: %v", err)
	}
}
