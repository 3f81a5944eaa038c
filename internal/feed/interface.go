package feed

import "context"

// Reader fetches the podcast feed and selects the newest eligible episode.
type Reader interface {
	Latest(ctx context.Context) (*Episode, error)
}
