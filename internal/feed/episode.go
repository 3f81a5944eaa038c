package feed

import (
	"fmt"
	"strings"
	"time"
)

// Episode is one unit of podcast content, built from a feed entry.
// Immutable after creation and discarded at the end of the run.
type Episode struct {
	Day        int
	Title      string
	GUID       string
	AudioURL   string
	Published  time.Time
	ArtworkURL string
}

// BaseName returns the filename stem shared by all of this episode's local
// artifacts, e.g. "Day 3- The Visitation".
func (e *Episode) BaseName() string {
	return fmt.Sprintf("Day %d- %s", e.Day, sanitizeTitle(e.Title))
}

// AudioFilename returns the local filename for the downloaded audio.
func (e *Episode) AudioFilename() string {
	return e.BaseName() + ".mp3"
}

// sanitizeTitle strips characters that are unsafe in filenames.
func sanitizeTitle(title string) string {
	r := strings.NewReplacer("/", "-", ":", "-", "?", "")
	return strings.TrimSpace(r.Replace(title))
}
