// Package extract trims recognized intro/outro boilerplate from raw
// transcripts before summarization. Trimming is best-effort and pure: when
// no marker is recognized the text passes through unchanged.
package extract

import "strings"

// defaultIntroMarkers open the meditation proper. Ordered by priority: the
// first is the host's usual phrasing, the rest cover transcription variants.
var defaultIntroMarkers = []string{
	"today we'll be meditating",
	"today we will be meditating",
	"today we're meditating",
	"today we are meditating",
	"we'll be meditating",
	"we will be meditating",
	"let us meditate",
	"we meditate on",
	"today's meditation",
}

// defaultOutroMarkers open the closing call-to-action.
var defaultOutroMarkers = []string{
	"thank you for praying with us",
	"thanks for praying with us",
	"if you'd like to support",
	"be sure to subscribe",
	"see you tomorrow",
}

type Extractor struct {
	introMarkers []string
	outroMarkers []string
}

// New creates an Extractor with the default marker set.
func New() *Extractor {
	return NewWithMarkers(defaultIntroMarkers, defaultOutroMarkers)
}

// NewWithMarkers creates an Extractor with custom boilerplate markers.
// Markers are matched case-insensitively.
func NewWithMarkers(intro, outro []string) *Extractor {
	e := &Extractor{}
	for _, m := range intro {
		e.introMarkers = append(e.introMarkers, strings.ToLower(m))
	}
	for _, m := range outro {
		e.outroMarkers = append(e.outroMarkers, strings.ToLower(m))
	}
	return e
}

// Trim cuts everything before the first recognized intro marker and
// everything from the earliest recognized outro marker after it. Idempotent:
// Trim(Trim(s)) == Trim(s).
func (e *Extractor) Trim(text string) string {
	lower := strings.ToLower(text)

	start := 0
	for _, m := range e.introMarkers {
		if i := strings.Index(lower, m); i >= 0 {
			start = i
			break
		}
	}

	trimmed := text[start:]
	lower = lower[start:]

	end := len(trimmed)
	for _, m := range e.outroMarkers {
		// An outro at position 0 would mean the whole text is outro;
		// leave it alone rather than return nothing.
		if i := strings.Index(lower, m); i > 0 && i < end {
			end = i
		}
	}

	return strings.TrimSpace(trimmed[:end])
}
