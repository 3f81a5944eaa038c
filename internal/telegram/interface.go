package telegram

import (
	"context"

	"github.com/lucasmeira/rosary-digest/internal/feed"
	"github.com/lucasmeira/rosary-digest/internal/summarize"
)

// Sender delivers finished summaries over the Telegram Bot API.
type Sender interface {
	SendSummary(ctx context.Context, ep *feed.Episode, sum *summarize.Summary) error
	CheckConnection(ctx context.Context) error
}
