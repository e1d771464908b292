package models

import "errors"

var (
	EmptyManifestError = errors.New("manifest file is empty")
	NoInvocationsError = errors.New("manifest does not declare any invocations")
)

// Manifest describes which CLI to exercise and with which argument
// combinations. It is loaded from a YAML file when the default built-in
// invocation list is not wanted.
type Manifest struct {
	Executable  string   `yaml:"executable"`
	Invocations []string `yaml:"invocations"`
}

// Validate checks that the manifest carries at least one invocation.
func (m Manifest) Validate() error {
	if len(m.Invocations) == 0 {
		return NoInvocationsError
	}

	return nil
}
