package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/lucasmeira/rosary-digest/internal/logger"
)

const transcribePrompt = "Transcribe this audio recording verbatim. " +
	"Respond with only the spoken transcript text, no commentary, no timestamps."

// remoteEngine sends the raw audio bytes to a Gemini model.
type remoteEngine struct {
	model    string
	apiKey   string
	language string
	logger   logger.Logger
}

func (e *remoteEngine) Name() string {
	return "remote/" + e.model
}

func (e *remoteEngine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	prompt := transcribePrompt
	if e.language != "" {
		prompt += fmt.Sprintf(" The audio is in language %q.", e.language)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(data, audioMIMEType(audioPath)),
		}, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from %s", e.model)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

func audioMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "audio/wav"
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/mpeg"
	}
}
