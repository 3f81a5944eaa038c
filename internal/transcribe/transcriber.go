package transcribe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucasmeira/rosary-digest/internal/feed"
)

// ErrTranscriptionFailed means every configured engine failed.
var ErrTranscriptionFailed = errors.New("transcription failed")

// Transcribe tries each engine in order. The fallback is a one-shot
// substitution, not a retry loop: when every engine has failed once, the
// error carries all causes.
func (t *implTranscriber) Transcribe(ctx context.Context, day int, audioPath string) (*Result, error) {
	if len(t.engines) == 0 {
		return nil, fmt.Errorf("%w: no engines configured", ErrTranscriptionFailed)
	}

	var causes []error
	for _, engine := range t.engines {
		t.logger.Info(ctx, "Transcribing with %s: %s", engine.Name(), audioPath)

		text, err := engine.Transcribe(ctx, audioPath)
		if err != nil {
			t.logger.Warn(ctx, "Engine %s failed: %v", engine.Name(), err)
			causes = append(causes, fmt.Errorf("%s: %w", engine.Name(), err))
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			causes = append(causes, fmt.Errorf("%s: empty transcript", engine.Name()))
			continue
		}

		t.logger.Info(ctx, "Transcription completed with %s (%d chars)", engine.Name(), len(text))
		return &Result{
			Day:      day,
			Text:     text,
			Engine:   engine.Name(),
			Language: t.language,
		}, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrTranscriptionFailed, errors.Join(causes...))
}

// SaveTranscript writes the transcript artifact with an episode header.
func SaveTranscript(path string, ep *feed.Episode, res *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Episode: %s\n", ep.Title)
	fmt.Fprintf(&b, "Published: %s\n", ep.Published.Format(time.RFC1123))
	fmt.Fprintf(&b, "Engine: %s\n", res.Engine)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(res.Text)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}
