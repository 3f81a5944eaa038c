package summarize

import (
	"fmt"
	"regexp"
	"strings"
)

// artworkPatterns match phrases like "the painting The Annunciation by Fra
// Angelico". Capture 1 is the work's title, capture 2 the artist.
var artworkPatterns = []*regexp.Regexp{
	// "painting <Title> by <Artist>", also artwork/icon/fresco/image
	regexp.MustCompile(`(?:[Pp]ainting|[Aa]rtwork|[Ii]con|[Ff]resco|[Ii]mage)[,:]?\s+(?:called\s+|titled\s+|of\s+)?"?([A-Z][A-Za-z' ]{2,60}?)"?,?\s+by\s+([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+){0,3})`),
	// "<Artist>'s painting <Title>"
	regexp.MustCompile(`([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+){0,3})'s\s+(?:painting|artwork|icon|fresco)[,:]?\s+"?([A-Z][A-Za-z' ]{2,60}?)"?(?:[.,]|$)`),
}

// detectArtwork scans the transcript for a mention of a named artwork and
// returns it as "Title by Artist", or "" when nothing is found.
func detectArtwork(text string) string {
	if m := artworkPatterns[0].FindStringSubmatch(text); m != nil {
		return formatArtwork(m[1], m[2])
	}
	if m := artworkPatterns[1].FindStringSubmatch(text); m != nil {
		// Possessive form captures artist first.
		return formatArtwork(m[2], m[1])
	}
	return ""
}

func formatArtwork(title, artist string) string {
	return fmt.Sprintf("%s by %s", strings.TrimSpace(title), strings.TrimSpace(artist))
}
