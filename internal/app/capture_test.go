package app

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/shini4i/fixture-gen/cmd/fixture-gen/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCaptureApp(t *testing.T, runner *mocks.MockCmdRunner) *App {
	t.Helper()

	cfg, err := NewConfig()
	require.NoError(t, err)

	application, err := New(cfg, Dependencies{
		FS:        afero.NewMemMapFs(),
		CmdRunner: runner,
		Logger:    setupTestLogger(t, "capture"),
	})
	require.NoError(t, err)

	return application
}

func TestCapture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCmdRunner(ctrl)
	application := newCaptureApp(t, mockRunner)

	// Test case 1: exactly one trailing newline is stripped
	mockRunner.EXPECT().Run("score-compose", "--version").Return("score-compose v1.2.3\n", nil)

	output, err := application.capture("--version")
	require.NoError(t, err)
	assert.Equal(t, "score-compose v1.2.3", output)

	// Test case 2: only the last newline is removed, inner ones survive
	mockRunner.EXPECT().Run("score-compose", "run", "--help").Return("line one\nline two\n", nil)

	output, err = application.capture("run --help")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", output)
}

func TestCaptureShellWordSplitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCmdRunner(ctrl)
	application := newCaptureApp(t, mockRunner)

	// Quoted arguments stay together the way a shell would keep them
	mockRunner.EXPECT().Run("score-compose", "run", "-f", "my file.yaml").Return("ok\n", nil)

	output, err := application.capture(`run -f "my file.yaml"`)
	require.NoError(t, err)
	assert.Equal(t, "ok", output)
}

func TestCaptureMalformedInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The runner must not be called for an invocation that cannot be split
	mockRunner := mocks.NewMockCmdRunner(ctrl)
	application := newCaptureApp(t, mockRunner)

	_, err := application.capture(`run -f 'unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed invocation")
}

func TestCaptureNonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCmdRunner(ctrl)
	application := newCaptureApp(t, mockRunner)

	// A failing tool invocation is still a successful capture
	mockRunner.EXPECT().Run("score-compose", "unknown").Return("Error: unknown command\n", &exec.ExitError{})

	output, err := application.capture("unknown")
	require.NoError(t, err)
	assert.Equal(t, "Error: unknown command", output)
}

func TestCaptureStartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCmdRunner(ctrl)
	application := newCaptureApp(t, mockRunner)

	mockRunner.EXPECT().Run("score-compose", "--version").Return("", errors.New("executable file not found in $PATH"))

	_, err := application.capture("--version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start process")
}

func TestCaptureNoOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCmdRunner(ctrl)
	application := newCaptureApp(t, mockRunner)

	// Empty output is signalled distinctly from a successful empty capture
	mockRunner.EXPECT().Run("score-compose", "quiet").Return("", nil)

	_, err := application.capture("quiet")
	assert.ErrorIs(t, err, errNoOutput)
}
