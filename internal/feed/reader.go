package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
)

var (
	// ErrFeedUnavailable means the feed could not be fetched or parsed.
	ErrFeedUnavailable = errors.New("feed unavailable")
	// ErrNoEligibleEpisode means the feed is empty or every entry is excluded.
	ErrNoEligibleEpisode = errors.New("no eligible episode")
)

var dayPattern = regexp.MustCompile(`(?i)^day\s+(\d+)`)

// Latest fetches the feed and returns the eligible entry with the most
// recent publication timestamp.
func (r *implReader) Latest(ctx context.Context) (*Episode, error) {
	parsed, err := r.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("%w: feed has no entries", ErrNoEligibleEpisode)
	}

	var feedArtwork string
	if parsed.Image != nil {
		feedArtwork = parsed.Image.URL
	}

	var latest *Episode
	for i, item := range parsed.Items {
		ep := r.buildEpisode(item, i, len(parsed.Items), feedArtwork)
		if ep == nil {
			continue
		}
		if r.skipIntro && ep.Day == 0 {
			r.logger.Debug(ctx, "Skipping intro episode: %s", ep.Title)
			continue
		}
		if latest == nil || ep.Published.After(latest.Published) {
			latest = ep
		}
	}

	if latest == nil {
		return nil, fmt.Errorf("%w: all entries excluded", ErrNoEligibleEpisode)
	}

	r.logger.Info(ctx, "Selected episode: day %d, %q, published %s",
		latest.Day, latest.Title, latest.Published.Format("2006-01-02"))
	return latest, nil
}

func (r *implReader) fetch(ctx context.Context) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: HTTP %d", resp.StatusCode)
	}

	parsed, err := r.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return parsed, nil
}

// buildEpisode converts one feed entry. Entries without an audio enclosure
// are ineligible and yield nil.
func (r *implReader) buildEpisode(item *gofeed.Item, index, total int, feedArtwork string) *Episode {
	audioURL := audioEnclosure(item)
	if audioURL == "" {
		return nil
	}

	ep := &Episode{
		Day:        episodeDay(item, index, total),
		Title:      strings.TrimSpace(item.Title),
		GUID:       item.GUID,
		AudioURL:   audioURL,
		ArtworkURL: feedArtwork,
	}
	if item.PublishedParsed != nil {
		ep.Published = *item.PublishedParsed
	}
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		ep.ArtworkURL = item.ITunesExt.Image
	}
	return ep
}

func audioEnclosure(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "audio/") {
			return enc.URL
		}
	}
	return ""
}

// episodeDay resolves the day number: the iTunes episode tag when present,
// then a leading "Day N" in the title, then feed order (newest first, so the
// oldest entry counts as day zero).
func episodeDay(item *gofeed.Item, index, total int) int {
	if item.ITunesExt != nil && item.ITunesExt.Episode != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(item.ITunesExt.Episode)); err == nil {
			return n
		}
	}
	if m := dayPattern.FindStringSubmatch(item.Title); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return total - 1 - index
}
