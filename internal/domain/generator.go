package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"testforge.dev/pkg/testforge/internal/adapter"
	m "testforge.dev/pkg/testforge/internal/model"
)

// Generator produces unit-test source text for a single input file.
type Generator interface {
	// GenerateTests reads the file, builds the prompt and invokes the
	// assistant. It propagates the first failure from any step and never
	// produces partial output.
	GenerateTests(ctx context.Context, path m.Path, framework string) (string, error)
}

type generator struct {
	fs        adapter.SourceFSAdapter
	assistant adapter.AssistantClient
}

// NewGenerator creates a Generator wired to the given filesystem adapter and
// assistant client.
func NewGenerator(fs adapter.SourceFSAdapter, assistant adapter.AssistantClient) Generator {
	return &generator{fs: fs, assistant: assistant}
}

func (g *generator) GenerateTests(ctx context.Context, path m.Path, framework string) (string, error) {
	// Missing and unreadable files are the same failure class: the input
	// could not be obtained.
	content, err := g.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", m.ErrNotFound, path)
		}

		return "", fmt.Errorf("%w: %s: %v", m.ErrNotFound, path, err)
	}

	prompt := BuildTestPrompt(m.GenerationRequest{
		SourcePath: path,
		SourceText: string(content),
		Framework:  framework,
	})

	slog.Info("generating tests", "source", path, "framework", framework)

	text, err := g.assistant.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: assistant returned empty test text for %s", m.ErrService, path)
	}

	return text, nil
}
