package domain

import (
	"strings"
	"testing"

	m "testforge.dev/pkg/testforge/internal/model"
)

func TestTestFileName(t *testing.T) {
	cases := []struct {
		source m.Path
		want   string
	}{
		{"calculator.py", "test_calculator.py"},
		{"src/utils.py", "test_utils.py"},
		{"/abs/path/module.py", "test_module.py"},
	}

	for _, tc := range cases {
		if got := TestFileName(tc.source); got != tc.want {
			t.Errorf("TestFileName(%s) = %s, want %s", tc.source, got, tc.want)
		}
	}
}

func TestBuildTestPrompt(t *testing.T) {
	req := m.GenerationRequest{
		SourcePath: "src/calculator.py",
		SourceText: "def add(a, b):\n    return a + b\n",
		Framework:  "pytest",
	}

	prompt := BuildTestPrompt(req)

	for _, want := range []string{
		"src/calculator.py",
		"def add(a, b):",
		"pytest",
		"edge cases",
		"test_calculator.py",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildTestPrompt_Deterministic(t *testing.T) {
	req := m.GenerationRequest{
		SourcePath: "a.py",
		SourceText: "x = 1",
		Framework:  "unittest",
	}

	if BuildTestPrompt(req) != BuildTestPrompt(req) {
		t.Fatal("prompt should be identical for identical inputs")
	}
}

func TestBuildTestPrompt_DefaultFramework(t *testing.T) {
	prompt := BuildTestPrompt(m.GenerationRequest{SourcePath: "a.py", SourceText: "x = 1\n"})

	if !strings.Contains(prompt, DefaultFramework) {
		t.Fatalf("prompt should fall back to %s", DefaultFramework)
	}
}
