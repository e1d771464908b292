package command

import (
	"testing"

	"github.com/shini4i/fixture-gen/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutePassesFlagsToConfig(t *testing.T) {
	var got app.Config

	opts := Options{
		Version:     "1.0.0",
		RunApp:      func(cfg app.Config) error { got = cfg; return nil },
		InitLogging: func(bool) {},
	}

	err := Execute(opts, []string{
		"--workspace", "fixtures",
		"--executable", "score-k8s",
		"--manifest", "manifest.yaml",
		"--append",
		"--debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "fixtures", got.WorkspaceDir)
	assert.Equal(t, "score-k8s", got.Executable)
	assert.Equal(t, "manifest.yaml", got.ManifestFile)
	assert.True(t, got.Append)
	assert.True(t, got.Debug)
	assert.Equal(t, "1.0.0", got.Version)
}

func TestExecuteDefaults(t *testing.T) {
	var got app.Config

	opts := Options{
		RunApp:      func(cfg app.Config) error { got = cfg; return nil },
		InitLogging: func(bool) {},
	}

	require.NoError(t, Execute(opts, []string{}))

	assert.Equal(t, app.DefaultWorkspaceDir, got.WorkspaceDir)
	assert.Equal(t, app.DefaultExecutable, got.Executable)
	assert.Equal(t, app.DefaultInvocations(), got.Invocations)
	assert.False(t, got.Append)
}

func TestExecuteEnvDefaults(t *testing.T) {
	t.Setenv("FIXTURE_GEN_WORKSPACE", "env-workspace")
	t.Setenv("FIXTURE_GEN_EXECUTABLE", "env-binary")

	var got app.Config

	opts := Options{
		RunApp:      func(cfg app.Config) error { got = cfg; return nil },
		InitLogging: func(bool) {},
	}

	require.NoError(t, Execute(opts, []string{}))

	assert.Equal(t, "env-workspace", got.WorkspaceDir)
	assert.Equal(t, "env-binary", got.Executable)
}

func TestExecuteWithoutRunHandler(t *testing.T) {
	err := Execute(Options{InitLogging: func(bool) {}}, []string{})

	assert.Error(t, err)
}

func TestExecutePropagatesRunError(t *testing.T) {
	opts := Options{
		RunApp:      func(app.Config) error { return assert.AnError },
		InitLogging: func(bool) {},
	}

	err := Execute(opts, []string{})

	assert.ErrorIs(t, err, assert.AnError)
}
