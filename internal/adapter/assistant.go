package adapter

import (
	"context"

	m "testforge.dev/pkg/testforge/internal/model"
)

// SessionOptions bound every assistant session: where it may look for files,
// how many back-and-forth turns it gets, and which capabilities it may use.
type SessionOptions struct {
	// WorkDir is the directory the assistant operates in.
	WorkDir m.Path

	// MaxTurns caps the number of request/response exchanges per session.
	MaxTurns int

	// AllowedTools is the capability allow-list (e.g. Read, Write). No
	// arbitrary execution is ever granted.
	AllowedTools []string

	// PermissionMode controls whether the assistant may act without
	// per-step confirmation (e.g. "acceptEdits").
	PermissionMode string
}

// AssistantClient bridges to an external AI text-generation capability.
//
// Generate sends one prompt and blocks until the service completes or the
// turn budget is exhausted, returning the final textual payload. A single
// attempt per call is the contract; any retry policy belongs to the caller.
// Implementations must honor ctx cancellation by abandoning the in-flight
// request.
type AssistantClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
