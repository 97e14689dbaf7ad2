package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/inch/internal/adapters/typescript"
	"go.trai.ch/inch/internal/app"
	"go.trai.ch/inch/internal/core/ports/mocks"
	"go.trai.ch/inch/internal/engine/session"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Warning(gomock.Any()).AnyTimes()
	notifier.EXPECT().AddDependency(gomock.Any()).AnyTimes()

	config := mocks.NewMockConfigLoader(ctrl)

	sessions := session.NewRegistry(session.NewMapStore(), logger)
	application := app.New(sessions, config, typescript.Factory, notifier, nil, logger)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:      application,
			Logger:   logger,
			Notifier: notifier,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, testProvider(t))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	stderr := new(bytes.Buffer)
	// The compile command fails because the file does not exist.
	exitCode := run(context.Background(), []string{"compile", "/nonexistent/index.ts"}, stderr, testProvider(t))
	assert.Equal(t, 1, exitCode)
}
