package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucasmeira/rosary-digest/internal/logger"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd" version="2.0">
<channel>
<title>Rosary in a Year</title>
%s
</channel>
</rss>`

func entry(day int, title, pubDate string) string {
	return fmt.Sprintf(`<item>
<title>%s</title>
<guid>ep-%d</guid>
<pubDate>%s</pubDate>
<itunes:episode>%d</itunes:episode>
<enclosure url="https://cdn.example.com/ep%d.mp3" type="audio/mpeg" length="1000"/>
</item>`, title, day, pubDate, day, day)
}

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
}

func TestLatestPicksNewestEligible(t *testing.T) {
	body := fmt.Sprintf(feedTemplate,
		entry(2, "The Visitation", "Wed, 03 Jan 2024 10:00:00 +0000")+
			entry(1, "The Faithful Yes", "Tue, 02 Jan 2024 10:00:00 +0000")+
			entry(0, "Intro", "Mon, 01 Jan 2024 10:00:00 +0000"))
	srv := serveFeed(t, body)
	defer srv.Close()

	r := New(srv.URL, true, srv.Client(), logger.New("error"))
	ep, err := r.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if ep.Day != 2 {
		t.Errorf("Day = %d, want 2", ep.Day)
	}
	if ep.Title != "The Visitation" {
		t.Errorf("Title = %q", ep.Title)
	}
	if ep.AudioURL != "https://cdn.example.com/ep2.mp3" {
		t.Errorf("AudioURL = %q", ep.AudioURL)
	}
}

func TestLatestSkipsIntro(t *testing.T) {
	// Intro published last: without the skip it would win on recency.
	body := fmt.Sprintf(feedTemplate,
		entry(0, "Intro", "Wed, 03 Jan 2024 10:00:00 +0000")+
			entry(1, "The Faithful Yes", "Tue, 02 Jan 2024 10:00:00 +0000"))
	srv := serveFeed(t, body)
	defer srv.Close()

	r := New(srv.URL, true, srv.Client(), logger.New("error"))
	ep, err := r.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if ep.Day != 1 {
		t.Errorf("Day = %d, want 1", ep.Day)
	}
}

func TestLatestIntroOnlyFeed(t *testing.T) {
	body := fmt.Sprintf(feedTemplate, entry(0, "Intro", "Mon, 01 Jan 2024 10:00:00 +0000"))
	srv := serveFeed(t, body)
	defer srv.Close()

	r := New(srv.URL, true, srv.Client(), logger.New("error"))
	_, err := r.Latest(context.Background())
	if !errors.Is(err, ErrNoEligibleEpisode) {
		t.Errorf("error = %v, want ErrNoEligibleEpisode", err)
	}
}

func TestLatestIntroSelectableWhenSkipDisabled(t *testing.T) {
	body := fmt.Sprintf(feedTemplate, entry(0, "Intro", "Mon, 01 Jan 2024 10:00:00 +0000"))
	srv := serveFeed(t, body)
	defer srv.Close()

	r := New(srv.URL, false, srv.Client(), logger.New("error"))
	ep, err := r.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if ep.Day != 0 {
		t.Errorf("Day = %d, want 0", ep.Day)
	}
}

func TestLatestEmptyFeed(t *testing.T) {
	srv := serveFeed(t, fmt.Sprintf(feedTemplate, ""))
	defer srv.Close()

	r := New(srv.URL, true, srv.Client(), logger.New("error"))
	_, err := r.Latest(context.Background())
	if !errors.Is(err, ErrNoEligibleEpisode) {
		t.Errorf("error = %v, want ErrNoEligibleEpisode", err)
	}
}

func TestLatestFeedUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not a feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "<html><body>not here</body></html>")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			r := New(srv.URL, true, srv.Client(), logger.New("error"))
			_, err := r.Latest(context.Background())
			if !errors.Is(err, ErrFeedUnavailable) {
				t.Errorf("error = %v, want ErrFeedUnavailable", err)
			}
		})
	}
}

func TestEntriesWithoutEnclosureAreIneligible(t *testing.T) {
	body := fmt.Sprintf(feedTemplate,
		`<item><title>Announcement</title><guid>a1</guid><pubDate>Thu, 04 Jan 2024 10:00:00 +0000</pubDate></item>`+
			entry(1, "The Faithful Yes", "Tue, 02 Jan 2024 10:00:00 +0000"))
	srv := serveFeed(t, body)
	defer srv.Close()

	r := New(srv.URL, true, srv.Client(), logger.New("error"))
	ep, err := r.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if ep.Title != "The Faithful Yes" {
		t.Errorf("Title = %q", ep.Title)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name string
		ep   Episode
		want string
	}{
		{"plain", Episode{Day: 1, Title: "The Faithful Yes"}, "Day 1- The Faithful Yes"},
		{"slash and colon", Episode{Day: 12, Title: "Joy/Sorrow: A Question?"}, "Day 12- Joy-Sorrow- A Question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ep.BaseName(); got != tt.want {
				t.Errorf("BaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}
