package summarize

import "context"

// Summarizer produces a fixed-format bullet summary of trimmed transcript
// text.
type Summarizer interface {
	Summarize(ctx context.Context, day int, title, text string) (*Summary, error)
}

// Provider is one summarization backend, typically a single model id.
// Providers are tried in order with uniform continue-on-failure semantics.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summary is the finished episode digest.
type Summary struct {
	Day     int
	Bullets []string // always exactly BulletCount entries
	Artwork string   // "Title by Artist", empty when no artwork is mentioned
	Model   string   // provider that produced the bullets
}

// BulletCount is the fixed number of summary bullets.
const BulletCount = 8
