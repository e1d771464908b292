package utils

import (
	"bytes"
	"os/exec"
)

// RealCmdRunner executes shell commands using the operating system.
type RealCmdRunner struct{}

// Run executes cmd with args and captures stdout and stderr merged into a
// single stream. Both streams point at the same buffer, so the captured text
// keeps the order in which the process produced it. The command's own error
// is returned as-is; callers decide whether a non-zero exit matters.
func (r *RealCmdRunner) Run(cmd string, args ...string) (string, error) {
	command := exec.Command(cmd, args...)

	var combined bytes.Buffer
	command.Stdout = &combined
	command.Stderr = &combined

	err := command.Run()

	return combined.String(), err
}
