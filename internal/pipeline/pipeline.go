// Package pipeline runs one end-to-end digest cycle: newest episode from the
// feed, audio download, transcription, boilerplate trim, bullet summary,
// Telegram delivery, then artifact cleanup.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lucasmeira/rosary-digest/internal/cleanup"
	"github.com/lucasmeira/rosary-digest/internal/config"
	"github.com/lucasmeira/rosary-digest/internal/download"
	"github.com/lucasmeira/rosary-digest/internal/extract"
	"github.com/lucasmeira/rosary-digest/internal/feed"
	"github.com/lucasmeira/rosary-digest/internal/logger"
	"github.com/lucasmeira/rosary-digest/internal/summarize"
	"github.com/lucasmeira/rosary-digest/internal/telegram"
	"github.com/lucasmeira/rosary-digest/internal/transcribe"
)

// Pipeline executes one full run.
type Pipeline interface {
	Run(ctx context.Context) *Result
}

type implPipeline struct {
	cfg         *config.Config
	reader      feed.Reader
	acquirer    download.Acquirer
	transcriber transcribe.Transcriber
	extractor   *extract.Extractor
	summarizer  summarize.Summarizer
	sender      telegram.Sender
	cleaner     cleanup.Manager
	logger      logger.Logger
}

// New wires the pipeline from its components.
func New(
	cfg *config.Config,
	reader feed.Reader,
	acquirer download.Acquirer,
	transcriber transcribe.Transcriber,
	extractor *extract.Extractor,
	summarizer summarize.Summarizer,
	sender telegram.Sender,
	cleaner cleanup.Manager,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		reader:      reader,
		acquirer:    acquirer,
		transcriber: transcriber,
		extractor:   extractor,
		summarizer:  summarizer,
		sender:      sender,
		cleaner:     cleaner,
		logger:      log,
	}
}

func (p *implPipeline) Run(ctx context.Context) *Result {
	// Artifacts created this run; removed together after delivery. On
	// failure they stay on disk for inspection and the retention sweep.
	var manifest []cleanup.LocalFile

	ep, err := p.reader.Latest(ctx)
	if err != nil {
		return fail(StageFeed, err, nil)
	}
	p.logger.Info(ctx, "Selected episode: Day %d - %s", ep.Day, ep.Title)

	audioPath := filepath.Join(p.cfg.Download.Dir, ep.AudioFilename())
	size, err := p.acquirer.Fetch(ctx, ep.AudioURL, audioPath)
	if err != nil {
		return fail(StageDownload, err, ep)
	}
	manifest = append(manifest, cleanup.LocalFile{Path: audioPath, Category: cleanup.CategoryAudio})
	p.logger.Info(ctx, "Downloaded %d bytes to %s", size, audioPath)

	res, err := p.transcriber.Transcribe(ctx, ep.Day, audioPath)
	if err != nil {
		return fail(StageTranscribe, err, ep)
	}
	p.logger.Info(ctx, "Transcribed day %d via %s (%d chars)", ep.Day, res.Engine, len(res.Text))

	if p.cfg.Transcription.PersistTranscript {
		path := filepath.Join(p.cfg.Download.Dir, ep.BaseName()+"_transcript.txt")
		if err := transcribe.SaveTranscript(path, ep, res); err != nil {
			p.logger.Warn(ctx, "Failed to persist transcript: %v", err)
		} else {
			manifest = append(manifest, cleanup.LocalFile{Path: path, Category: cleanup.CategoryTranscript})
		}
	}

	trimmed := p.extractor.Trim(res.Text)
	p.logger.Debug(ctx, "Extracted meditation: %d -> %d chars", len(res.Text), len(trimmed))

	sum, err := p.summarizer.Summarize(ctx, ep.Day, ep.Title, trimmed)
	if err != nil {
		return fail(StageSummarize, err, ep)
	}

	if p.cfg.Summary.PersistSummary {
		path := filepath.Join(p.cfg.Download.Dir, ep.BaseName()+"_summary.txt")
		if err := summarize.SaveSummary(path, ep, sum); err != nil {
			p.logger.Warn(ctx, "Failed to persist summary: %v", err)
		} else {
			manifest = append(manifest, cleanup.LocalFile{Path: path, Category: cleanup.CategorySummary})
		}
	}

	if err := p.sender.SendSummary(ctx, ep, sum); err != nil {
		return fail(StageDeliver, err, ep)
	}
	p.logger.Info(ctx, "Delivered summary for day %d", ep.Day)

	if !p.cfg.CleanupOnSuccess() {
		p.logger.Info(ctx, "Cleanup on success disabled, keeping %d artifact(s)", len(manifest))
		return &Result{State: StateDelivered, Episode: ep}
	}

	removed := p.cleaner.RemoveFiles(ctx, manifest)
	p.logger.Info(ctx, "Cleaned up %d of %d artifact(s)", removed, len(manifest))
	return &Result{State: StateCleanedUp, Episode: ep}
}

func fail(stage Stage, err error, ep *feed.Episode) *Result {
	return &Result{
		State:   StateFailed,
		Stage:   stage,
		Err:     fmt.Errorf("%s: %w", stage, err),
		Episode: ep,
	}
}
