package app

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// errNoOutput marks a process that terminated without emitting a single
// byte on stdout or stderr. It is distinct from a process start failure:
// the caller records an empty fixture instead of aborting the run.
var errNoOutput = errors.New("process produced no output")

// capture runs one invocation of the configured executable and returns its
// combined stdout and stderr with exactly one trailing newline removed.
//
// The invocation string is split with shell quoting rules, so entries like
// `run -f 'my file.yaml'` behave the way they would in a shell. A non-zero
// exit is not an error as long as the process produced output; capturing
// failure messages of the tool under test is the whole point.
func (a *App) capture(invocation string) (string, error) {
	words, err := shellquote.Split(invocation)
	if err != nil {
		return "", fmt.Errorf("malformed invocation: %w", err)
	}

	output, err := a.cmdRunner.Run(a.cfg.Executable, words...)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", fmt.Errorf("failed to start process: %w", err)
	}

	if output == "" {
		return "", errNoOutput
	}

	return strings.TrimSuffix(output, "\n"), nil
}
