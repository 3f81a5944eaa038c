package config

import "fmt"

type Config struct {
	Feed          FeedConfig          `yaml:"feed"`
	Download      DownloadConfig      `yaml:"download"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summary       SummaryConfig       `yaml:"summary"`
	Telegram      TelegramConfig      `yaml:"telegram"`
	Cleanup       CleanupConfig       `yaml:"cleanup"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type FeedConfig struct {
	URL              string `yaml:"url"`
	SkipIntroEpisode bool   `yaml:"skip_intro_episode"`
}

type DownloadConfig struct {
	Dir string `yaml:"dir"`
}

type TranscriptionConfig struct {
	RemoteModel       string `yaml:"remote_model"`
	Language          string `yaml:"language"`
	WhisperBinary     string `yaml:"whisper_binary"`
	WhisperModelDir   string `yaml:"whisper_model_dir"`
	LocalModel        string `yaml:"local_model"`
	PersistTranscript bool   `yaml:"persist_transcript"`
}

type SummaryConfig struct {
	Models         []string `yaml:"models"`
	PersistSummary bool     `yaml:"persist_summary"`
}

type TelegramConfig struct {
	ChatID string `yaml:"chat_id"`
}

type CleanupConfig struct {
	OnSuccess     *bool `yaml:"on_success"`
	RetentionDays int   `yaml:"retention_days"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	RunLog string `yaml:"run_log"`
}

// localModelTiers are the whisper.cpp model sizes the local engine understands.
var localModelTiers = map[string]bool{
	"tiny":   true,
	"base":   true,
	"small":  true,
	"medium": true,
	"large":  true,
}

func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}

	if c.Download.Dir == "" {
		c.Download.Dir = "downloads"
	}
	if c.Transcription.RemoteModel == "" {
		c.Transcription.RemoteModel = "gemini-2.5-flash"
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "en"
	}
	if c.Transcription.LocalModel == "" {
		c.Transcription.LocalModel = "base"
	}
	if !localModelTiers[c.Transcription.LocalModel] {
		return fmt.Errorf("transcription.local_model %q is not a known model tier", c.Transcription.LocalModel)
	}
	if c.Transcription.WhisperBinary != "" && c.Transcription.WhisperModelDir == "" {
		c.Transcription.WhisperModelDir = "models"
	}
	if len(c.Summary.Models) == 0 {
		c.Summary.Models = []string{"gemini-2.5-flash"}
	}
	if c.Cleanup.OnSuccess == nil {
		enabled := true
		c.Cleanup.OnSuccess = &enabled
	}
	if c.Cleanup.RetentionDays == 0 {
		c.Cleanup.RetentionDays = 7
	}
	if c.Cleanup.RetentionDays < 0 {
		return fmt.Errorf("cleanup.retention_days must be positive")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// CleanupOnSuccess reports whether artifacts are deleted after delivery.
func (c *Config) CleanupOnSuccess() bool {
	return c.Cleanup.OnSuccess != nil && *c.Cleanup.OnSuccess
}
