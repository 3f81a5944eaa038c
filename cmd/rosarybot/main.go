package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/lucasmeira/rosary-digest/internal/cleanup"
	"github.com/lucasmeira/rosary-digest/internal/config"
	"github.com/lucasmeira/rosary-digest/internal/download"
	"github.com/lucasmeira/rosary-digest/internal/extract"
	"github.com/lucasmeira/rosary-digest/internal/feed"
	"github.com/lucasmeira/rosary-digest/internal/logger"
	"github.com/lucasmeira/rosary-digest/internal/pipeline"
	"github.com/lucasmeira/rosary-digest/internal/summarize"
	"github.com/lucasmeira/rosary-digest/internal/telegram"
	"github.com/lucasmeira/rosary-digest/internal/transcribe"
	"github.com/lucasmeira/rosary-digest/pkg/executor"
)

type options struct {
	Config        string `short:"c" long:"config" default:"config.yaml" description:"Path to the YAML config file"`
	EnvFile       string `long:"env-file" default:".env" description:"Optional env file with API credentials"`
	Sweep         bool   `long:"sweep" description:"Only remove artifacts older than the retention window, then exit"`
	Storage       bool   `long:"storage" description:"Only print download directory usage, then exit"`
	CheckTelegram bool   `long:"check-telegram" description:"Only verify the Telegram bot token, then exit"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 2
	}

	// Credentials come from the environment; the env file is a convenience
	// for local runs and is allowed to be absent.
	if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "load env file %s: %v\n", opts.EnvFile, err)
		return 2
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config %s: %v\n", opts.Config, err)
		return 2
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	client := &http.Client{Timeout: 60 * time.Second}
	cleaner := cleanup.New(cfg.Download.Dir, log)

	switch {
	case opts.Sweep:
		retention := time.Duration(cfg.Cleanup.RetentionDays) * 24 * time.Hour
		cleaner.Sweep(ctx, retention)
		return 0

	case opts.Storage:
		info, err := cleaner.StorageInfo(ctx)
		if err != nil {
			log.Error(ctx, "Storage info: %v", err)
			return 1
		}
		fmt.Printf("%s: %d file(s), %d bytes\n", cfg.Download.Dir, info.Files, info.TotalBytes)
		for ext, n := range info.ByExtension {
			fmt.Printf("  %s: %d\n", ext, n)
		}
		return 0

	case opts.CheckTelegram:
		sender, err := newSender(cfg, client, log)
		if err != nil {
			log.Error(ctx, "%v", err)
			return 2
		}
		if err := sender.CheckConnection(ctx); err != nil {
			log.Error(ctx, "Telegram check failed: %v", err)
			return 1
		}
		fmt.Println("telegram connection ok")
		return 0
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" && cfg.Transcription.WhisperBinary == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is not set and no local whisper binary is configured")
		return 2
	}

	sender, err := newSender(cfg, client, log)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 2
	}

	p := pipeline.New(
		cfg,
		feed.New(cfg.Feed.URL, cfg.Feed.SkipIntroEpisode, client, log),
		download.New(client, log),
		transcribe.New(cfg, apiKey, executor.New(), log),
		extract.New(),
		summarize.New(cfg.Summary.Models, apiKey, log),
		sender,
		cleaner,
		log,
	)

	runLog := newRunLog(cfg.Logging.RunLog, log)
	runLog.start(ctx)

	res := p.Run(ctx)
	if res.Err != nil {
		log.Error(ctx, "Run failed at %s stage: %v", res.Stage, res.Err)
	}

	// A delivered run that skipped cleanup by configuration is still a
	// success; retention is handled by --sweep.
	runLog.end(ctx, res)
	if !res.Succeeded() {
		return 1
	}
	return 0
}

// newSender reads Telegram credentials from the environment, with the chat id
// falling back to the config file.
func newSender(cfg *config.Config, client *http.Client, log logger.Logger) (telegram.Sender, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if chatID == "" {
		chatID = cfg.Telegram.ChatID
	}
	if chatID == "" {
		return nil, fmt.Errorf("no Telegram chat id: set TELEGRAM_CHAT_ID or telegram.chat_id")
	}
	return telegram.New(token, chatID, client, log), nil
}
