package feed

import (
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/lucasmeira/rosary-digest/internal/logger"
)

const defaultUserAgent = "rosary-digest/1.0"

type implReader struct {
	url       string
	skipIntro bool
	userAgent string
	client    *http.Client
	parser    *gofeed.Parser
	logger    logger.Logger
}

// New creates a Reader for the given feed URL. skipIntro excludes the
// day-zero intro entry from selection.
func New(url string, skipIntro bool, client *http.Client, log logger.Logger) Reader {
	return &implReader{
		url:       url,
		skipIntro: skipIntro,
		userAgent: defaultUserAgent,
		client:    client,
		parser:    gofeed.NewParser(),
		logger:    log,
	}
}
