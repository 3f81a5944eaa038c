package download

import (
	"net/http"

	"github.com/lucasmeira/rosary-digest/internal/logger"
)

type implAcquirer struct {
	client *http.Client
	logger logger.Logger
}

// New creates a new Acquirer instance.
func New(client *http.Client, log logger.Logger) Acquirer {
	return &implAcquirer{
		client: client,
		logger: log,
	}
}
