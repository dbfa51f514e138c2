package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"testforge.dev/pkg/testforge/internal/domain"
	"testforge.dev/pkg/testforge/internal/domain/mocks"
	m "testforge.dev/pkg/testforge/internal/model"
)

func withMockPipeline(t *testing.T) (*mocks.MockBatchRunner, func()) {
	t.Helper()

	mockGen := mocks.NewMockGenerator(t)
	mockRunner := mocks.NewMockBatchRunner(t)

	originalGenerator := generator
	originalRunner := batchRunner
	generator = mockGen
	batchRunner = mockRunner

	return mockRunner, func() {
		generator = originalGenerator
		batchRunner = originalRunner
	}
}

func TestBatchCmd_PassesArgs(t *testing.T) {
	mockRunner, restore := withMockPipeline(t)
	defer restore()

	outputDir := t.TempDir()

	mockRunner.On("GenerateForDirectory", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Dir == m.Path("./src") &&
			args.OutputDir == m.Path(outputDir) &&
			args.Recursive
	})).Return(m.BatchReport{}, nil)

	cmd := newTestRootCmd()
	cmd.AddCommand(newBatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"batch", "-o", outputDir, "./src"})

	err := cmd.Execute()
	require.NoError(t, err)

	mockRunner.AssertExpectations(t)
}

func TestBatchCmd_TopLevelFlag(t *testing.T) {
	mockRunner, restore := withMockPipeline(t)
	defer restore()

	mockRunner.On("GenerateForDirectory", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return !args.Recursive
	})).Return(m.BatchReport{}, nil)

	cmd := newTestRootCmd()
	cmd.AddCommand(newBatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"batch", "--top-level", "./src"})

	err := cmd.Execute()
	require.NoError(t, err)
}

func TestBatchCmd_ExcludePatterns(t *testing.T) {
	mockRunner, restore := withMockPipeline(t)
	defer restore()

	mockRunner.On("GenerateForDirectory", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return len(args.Exclude) == 1 && args.Exclude[0] == `_pb2\.py$`
	})).Return(m.BatchReport{}, nil)

	cmd := newTestRootCmd()
	cmd.AddCommand(newBatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"batch", "--top-level=false", "-x", `_pb2\.py$`, "./src"})

	err := cmd.Execute()
	require.NoError(t, err)
}

func TestBatchCmd_RequiresArgument(t *testing.T) {
	cmd := newTestRootCmd()
	cmd.AddCommand(newBatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"batch"})

	err := cmd.Execute()
	assert.Error(t, err)
}
