package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	m "testforge.dev/pkg/testforge/internal/model"
)

// maxStreamLineSize bounds a single streamed JSON line. Generated test files
// arrive inside one result line, so this needs headroom.
const maxStreamLineSize = 4 * 1024 * 1024

// ClaudeCLIClient runs the Claude Code CLI in non-interactive print mode and
// consumes its stream-json output. Each Generate call is one subprocess; the
// context cancels it mid-flight.
type ClaudeCLIClient struct {
	binary  string
	options SessionOptions
}

// NewClaudeCLIClient constructs a ClaudeCLIClient for the given binary name
// (usually "claude") and session options.
func NewClaudeCLIClient(binary string, options SessionOptions) *ClaudeCLIClient {
	if binary == "" {
		binary = "claude"
	}

	return &ClaudeCLIClient{binary: binary, options: options}
}

// Generate sends the prompt to the CLI and returns the final result text.
func (c *ClaudeCLIClient) Generate(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, c.args()...)
	cmd.Dir = string(c.options.WorkDir)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("invoking assistant CLI", "binary", c.binary, "workdir", c.options.WorkDir, "max_turns", c.options.MaxTurns)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", fmt.Errorf("%w: %s: %v: %s", m.ErrService, c.binary, err, strings.TrimSpace(stderr.String()))
	}

	text, err := collectResult(&stdout)
	if err != nil {
		return "", err
	}

	return text, nil
}

func (c *ClaudeCLIClient) args() []string {
	args := []string{
		"-p",
		"--output-format", "stream-json",
		"--verbose",
		"--max-turns", strconv.Itoa(c.options.MaxTurns),
	}

	if len(c.options.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(c.options.AllowedTools, ","))
	}

	if c.options.PermissionMode != "" {
		args = append(args, "--permission-mode", c.options.PermissionMode)
	}

	return args
}

// streamEvent is the subset of the CLI's stream-json events we care about.
type streamEvent struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	IsError bool   `json:"is_error"`
	Result  string `json:"result"`
	Message struct {
		Content []contentBlock `json:"content"`
	} `json:"message"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// collectResult reads streamed JSON fragments and selects the final textual
// payload. The service may emit several partial assistant messages before the
// terminal result event; the result event wins, with the last assistant text
// as fallback for older CLI versions that omit it.
func collectResult(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLineSize)

	var lastAssistantText string

	var result string

	var sawResult bool

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var event streamEvent
		if err := json.Unmarshal(line, &event); err != nil {
			slog.Debug("skipping unparseable stream fragment", "error", err)
			continue
		}

		switch event.Type {
		case "assistant":
			for _, block := range event.Message.Content {
				if block.Type == "text" && block.Text != "" {
					lastAssistantText = block.Text
				}
			}

		case "result":
			sawResult = true

			if event.IsError {
				return "", fmt.Errorf("%w: %s", m.ErrService, resultFailureReason(event))
			}

			result = event.Result
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading response stream: %v", m.ErrService, err)
	}

	if result == "" {
		result = lastAssistantText
	}

	if strings.TrimSpace(result) == "" {
		if sawResult {
			return "", fmt.Errorf("%w: empty result payload", m.ErrService)
		}

		return "", fmt.Errorf("%w: no result event in response stream", m.ErrService)
	}

	return result, nil
}

func resultFailureReason(event streamEvent) string {
	if event.Result != "" {
		return event.Result
	}

	if event.Subtype != "" {
		return event.Subtype
	}

	return "unknown failure"
}
