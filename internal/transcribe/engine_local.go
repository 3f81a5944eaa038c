package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasmeira/rosary-digest/internal/logger"
	"github.com/lucasmeira/rosary-digest/pkg/executor"
)

// localEngine runs a whisper.cpp binary. Slower and less accurate than the
// remote engine, but free and offline.
type localEngine struct {
	binary   string
	modelDir string
	tier     string
	language string
	executor executor.Executor
	logger   logger.Logger
}

func (e *localEngine) Name() string {
	return "local/whisper-" + e.tier
}

func (e *localEngine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	modelPath := filepath.Join(e.modelDir, fmt.Sprintf("ggml-%s.bin", e.tier))
	if _, err := os.Stat(modelPath); err != nil {
		return "", fmt.Errorf("whisper model %s: %w", modelPath, err)
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	// -otxt writes <prefix>.txt with plain transcript text.
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-otxt",
		"-l", e.language,
		"--output-file", outputPrefix,
	}

	if _, err := e.executor.Execute(ctx, e.binary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	// The .txt is a whisper byproduct; transcript persistence is handled
	// separately by the pipeline.
	if err := os.Remove(txtPath); err != nil {
		e.logger.Warn(ctx, "Failed to remove whisper output %s: %v", txtPath, err)
	}

	return string(data), nil
}
