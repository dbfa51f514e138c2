package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	m "testforge.dev/pkg/testforge/internal/model"
)

const defaultOpenAIModel = "gpt-4o-mini"

// openAISystemPrompt frames every request; the per-file instructions travel
// in the user message built by the prompt builder.
const openAISystemPrompt = "You are an expert software engineer who writes " +
	"thorough, idiomatic unit tests. Respond with the complete test file " +
	"content and nothing else."

// OpenAIAssistant is an AssistantClient backed by the OpenAI chat completion
// API. Unlike the CLI bridge it has no tool access, so the generated test
// text is returned directly in the completion.
type OpenAIAssistant struct {
	client *openai.Client
	model  string
}

// NewOpenAIAssistant constructs an OpenAIAssistant. An empty model falls back
// to a small default.
func NewOpenAIAssistant(apiKey, model string) (*OpenAIAssistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", m.ErrService)
	}

	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIAssistant{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// NewOpenAIAssistantWithConfig constructs a client from an explicit
// configuration. Tests use this to point at a stub server.
func NewOpenAIAssistantWithConfig(config openai.ClientConfig, model string) *OpenAIAssistant {
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIAssistant{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Generate sends the prompt as a single chat completion request.
func (o *OpenAIAssistant) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Debug("invoking OpenAI assistant", "model", o.model)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", fmt.Errorf("%w: %v", m.ErrService, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: completion returned no text", m.ErrService)
	}

	return resp.Choices[0].Message.Content, nil
}
