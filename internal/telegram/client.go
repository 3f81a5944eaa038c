package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lucasmeira/rosary-digest/internal/feed"
	"github.com/lucasmeira/rosary-digest/internal/logger"
	"github.com/lucasmeira/rosary-digest/internal/summarize"
)

// ErrDeliveryFailed wraps any Bot API failure that survives retries.
var ErrDeliveryFailed = errors.New("telegram delivery failed")

const defaultBaseURL = "https://api.telegram.org"

type implSender struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Sender against the public Bot API.
func New(token, chatID string, client *http.Client, log logger.Logger) Sender {
	return NewWithBaseURL(token, chatID, defaultBaseURL, client, log)
}

// NewWithBaseURL creates a Sender against a custom API endpoint. Tests point
// this at an httptest server.
func NewWithBaseURL(token, chatID, baseURL string, client *http.Client, log logger.Logger) Sender {
	return &implSender{
		token:   token,
		chatID:  chatID,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  log,
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (s *implSender) SendSummary(ctx context.Context, ep *feed.Episode, sum *summarize.Summary) error {
	msg := RenderMessage(ep, sum)

	s.logger.Info(ctx, "Sending summary for day %d to chat %s", ep.Day, s.chatID)

	status, body, err := s.sendMessage(ctx, msg, "Markdown")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	if body.OK {
		return nil
	}

	// Markdown entity errors are recoverable: the same text is valid as
	// plain text, and a plain message beats no message.
	if status == http.StatusBadRequest && strings.Contains(strings.ToLower(body.Description), "can't parse") {
		s.logger.Warn(ctx, "Markdown rejected (%s), retrying as plain text", body.Description)
		status, body, err = s.sendMessage(ctx, msg, "")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		}
		if body.OK {
			return nil
		}
	}

	return fmt.Errorf("%w: api status %d: %s", ErrDeliveryFailed, status, body.Description)
}

func (s *implSender) sendMessage(ctx context.Context, text, parseMode string) (int, *apiResponse, error) {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                s.chatID,
		Text:                  text,
		ParseMode:             parseMode,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, &body, nil
}

// CheckConnection verifies the bot token with a getMe call.
func (s *implSender) CheckConnection(ctx context.Context) error {
	url := fmt.Sprintf("%s/bot%s/getMe", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrDeliveryFailed, err)
	}
	if !body.OK {
		return fmt.Errorf("%w: getMe: %s", ErrDeliveryFailed, body.Description)
	}

	s.logger.Info(ctx, "Telegram connection verified")
	return nil
}
