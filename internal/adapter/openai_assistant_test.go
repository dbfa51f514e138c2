package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	m "testforge.dev/pkg/testforge/internal/model"
)

func newStubOpenAIServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server
}

func stubOpenAIClient(t *testing.T, body string, status int) *OpenAIAssistant {
	t.Helper()

	server := newStubOpenAIServer(t, body, status)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return NewOpenAIAssistantWithConfig(config, "gpt-4o-mini")
}

func TestOpenAIAssistant_Generate(t *testing.T) {
	body := `{"choices":[{"message":{"role":"assistant","content":"import pytest\n"}}]}`
	client := stubOpenAIClient(t, body, http.StatusOK)

	got, err := client.Generate(context.Background(), "write tests")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got != "import pytest\n" {
		t.Fatalf("Generate() = %q", got)
	}
}

func TestOpenAIAssistant_EmptyCompletion(t *testing.T) {
	body := `{"choices":[{"message":{"role":"assistant","content":"   "}}]}`
	client := stubOpenAIClient(t, body, http.StatusOK)

	_, err := client.Generate(context.Background(), "write tests")
	if !errors.Is(err, m.ErrService) {
		t.Fatalf("Generate() error = %v, want ErrService", err)
	}
}

func TestOpenAIAssistant_APIFailure(t *testing.T) {
	client := stubOpenAIClient(t, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)

	_, err := client.Generate(context.Background(), "write tests")
	if !errors.Is(err, m.ErrService) {
		t.Fatalf("Generate() error = %v, want ErrService", err)
	}
}

func TestNewOpenAIAssistant_RequiresKey(t *testing.T) {
	_, err := NewOpenAIAssistant("", "")
	if !errors.Is(err, m.ErrService) {
		t.Fatalf("NewOpenAIAssistant() error = %v, want ErrService", err)
	}
}
