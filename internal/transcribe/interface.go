package transcribe

import "context"

// Transcriber converts a local audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, day int, audioPath string) (*Result, error)
}

// Engine is one transcription backend. Engines are tried in order; the first
// success wins.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Result holds the transcript and which engine produced it.
type Result struct {
	Day      int
	Text     string
	Engine   string
	Language string
}
