package executor

import "context"

// Executor runs external commands, currently only the whisper.cpp binary.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
