package pipeline

import "github.com/lucasmeira/rosary-digest/internal/feed"

// State is where a run ended up.
type State string

const (
	StateIdle            State = "idle"
	StateFeedFetched     State = "feed_fetched"
	StateAudioDownloaded State = "audio_downloaded"
	StateTranscribed     State = "transcribed"
	StateExtracted       State = "extracted"
	StateSummarized      State = "summarized"
	StateDelivered       State = "delivered"
	StateCleanedUp       State = "cleaned_up"
	StateFailed          State = "failed"
)

// Stage names the pipeline step a failure happened in.
type Stage string

const (
	StageFeed       Stage = "feed"
	StageDownload   Stage = "download"
	StageTranscribe Stage = "transcribe"
	StageExtract    Stage = "extract"
	StageSummarize  Stage = "summarize"
	StageDeliver    Stage = "deliver"
	StageCleanup    Stage = "cleanup"
)

// Result describes a finished run.
type Result struct {
	State   State
	Stage   Stage // set only on failure
	Err     error // set only on failure
	Episode *feed.Episode
}

// Succeeded reports whether the summary reached the subscriber. Cleanup is
// best-effort, so a delivered run with cleanup disabled still succeeds.
func (r *Result) Succeeded() bool {
	return r.State == StateDelivered || r.State == StateCleanedUp
}
