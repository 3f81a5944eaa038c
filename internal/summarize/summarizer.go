package summarize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucasmeira/rosary-digest/internal/feed"
)

// ErrSummarizationFailed wraps the joined causes when every provider in the
// chain fails or returns malformed output.
var ErrSummarizationFailed = errors.New("summarization failed")

// maxPromptTranscript caps how much transcript text goes into the prompt.
const maxPromptTranscript = 4000

const promptTemplate = `Summarize this rosary meditation transcript into exactly %d short bullet points.

Rules:
- Each bullet is one sentence, simple enough to copy by hand.
- Focus on the spiritual message and the mystery being meditated.
- Start each line with "• ".
- Output only the %d bullet lines, nothing else.

Episode: Day %d - %s

Transcript:
%s`

func (s *implSummarizer) Summarize(ctx context.Context, day int, title, text string) (*Summary, error) {
	if len(s.providers) == 0 {
		return nil, fmt.Errorf("%w: no providers configured", ErrSummarizationFailed)
	}

	prompt := buildPrompt(day, title, text)
	artwork := detectArtwork(text)

	var causes []error
	for _, p := range s.providers {
		s.logger.Info(ctx, "Summarizing day %d with %s", day, p.Name())

		raw, err := p.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn(ctx, "Provider %s failed: %v", p.Name(), err)
			causes = append(causes, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}

		bullets, err := parseBullets(raw)
		if err != nil {
			s.logger.Warn(ctx, "Provider %s returned malformed summary: %v", p.Name(), err)
			causes = append(causes, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}

		s.logger.Info(ctx, "Summary for day %d produced by %s", day, p.Name())
		return &Summary{
			Day:     day,
			Bullets: bullets,
			Artwork: artwork,
			Model:   p.Name(),
		}, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrSummarizationFailed, errors.Join(causes...))
}

func buildPrompt(day int, title, text string) string {
	if len(text) > maxPromptTranscript {
		text = text[:maxPromptTranscript]
	}
	return fmt.Sprintf(promptTemplate, BulletCount, BulletCount, day, title, text)
}

// parseBullets extracts bullet lines from model output. The response is
// malformed unless it yields exactly BulletCount bullets.
func parseBullets(raw string) ([]string, error) {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		var body string
		switch {
		case strings.HasPrefix(line, "• "):
			body = line[len("• "):]
		case strings.HasPrefix(line, "- "):
			body = line[len("- "):]
		case strings.HasPrefix(line, "* "):
			body = line[len("* "):]
		default:
			continue
		}

		body = strings.TrimSpace(strings.ReplaceAll(body, "**", ""))
		if body == "" {
			continue
		}
		// Some models volunteer an artwork line despite the prompt; artwork
		// is detected from the transcript instead.
		if strings.HasPrefix(strings.ToLower(body), "artwork:") {
			continue
		}
		bullets = append(bullets, body)
	}

	if len(bullets) != BulletCount {
		return nil, fmt.Errorf("expected %d bullets, got %d", BulletCount, len(bullets))
	}
	return bullets, nil
}

// SaveSummary writes the summary as a plain-text artifact next to the other
// episode files.
func SaveSummary(path string, ep *feed.Episode, sum *Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Episode: Day %d - %s\n", ep.Day, ep.Title)
	fmt.Fprintf(&b, "Published: %s\n", ep.Published.Format(time.RFC1123))
	fmt.Fprintf(&b, "Model: %s\n", sum.Model)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	if sum.Artwork != "" {
		fmt.Fprintf(&b, "• Artwork: %s\n", sum.Artwork)
	}
	for _, bullet := range sum.Bullets {
		fmt.Fprintf(&b, "• %s\n", bullet)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
