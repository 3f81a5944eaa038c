package transcribe

import (
	"github.com/lucasmeira/rosary-digest/internal/config"
	"github.com/lucasmeira/rosary-digest/internal/logger"
	"github.com/lucasmeira/rosary-digest/pkg/executor"
)

type implTranscriber struct {
	engines  []Engine
	language string
	logger   logger.Logger
}

// New builds the configured engine chain: the remote Gemini engine when an
// API key is available, then the local whisper.cpp engine when a binary is
// configured.
func New(cfg *config.Config, apiKey string, exec executor.Executor, log logger.Logger) Transcriber {
	var engines []Engine

	if apiKey != "" {
		engines = append(engines, &remoteEngine{
			model:    cfg.Transcription.RemoteModel,
			apiKey:   apiKey,
			language: cfg.Transcription.Language,
			logger:   log,
		})
	}

	if cfg.Transcription.WhisperBinary != "" {
		engines = append(engines, &localEngine{
			binary:   cfg.Transcription.WhisperBinary,
			modelDir: cfg.Transcription.WhisperModelDir,
			tier:     cfg.Transcription.LocalModel,
			language: cfg.Transcription.Language,
			executor: exec,
			logger:   log,
		})
	}

	return NewWithEngines(engines, cfg.Transcription.Language, log)
}

// NewWithEngines creates a Transcriber over an explicit engine chain.
func NewWithEngines(engines []Engine, language string, log logger.Logger) Transcriber {
	return &implTranscriber{
		engines:  engines,
		language: language,
		logger:   log,
	}
}
