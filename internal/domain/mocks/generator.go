// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"testforge.dev/pkg/testforge/internal/domain"
	m "testforge.dev/pkg/testforge/internal/model"
)

// MockGenerator is a mock implementation of domain.Generator.
type MockGenerator struct {
	mock.Mock
}

// NewMockGenerator creates a MockGenerator registered for cleanup assertions.
func NewMockGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerator {
	mockGen := &MockGenerator{}
	mockGen.Mock.Test(t)

	t.Cleanup(func() { mockGen.AssertExpectations(t) })

	return mockGen
}

// GenerateTests implements domain.Generator.
func (g *MockGenerator) GenerateTests(ctx context.Context, path m.Path, framework string) (string, error) {
	args := g.Called(ctx, path, framework)

	return args.String(0), args.Error(1)
}

// MockBatchRunner is a mock implementation of domain.BatchRunner.
type MockBatchRunner struct {
	mock.Mock
}

// NewMockBatchRunner creates a MockBatchRunner registered for cleanup assertions.
func NewMockBatchRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBatchRunner {
	mockRunner := &MockBatchRunner{}
	mockRunner.Mock.Test(t)

	t.Cleanup(func() { mockRunner.AssertExpectations(t) })

	return mockRunner
}

// GenerateForDirectory implements domain.BatchRunner.
func (r *MockBatchRunner) GenerateForDirectory(ctx context.Context, args domain.BatchArgs) (m.BatchReport, error) {
	called := r.Called(ctx, args)

	report, _ := called.Get(0).(m.BatchReport)

	return report, called.Error(1)
}
