package app

import "errors"

// Config captures runtime parameters for a capture run.
type Config struct {
	Executable   string
	WorkspaceDir string
	ManifestFile string
	Invocations  []string
	Append       bool
	Debug        bool
	Version      string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with the built-in invocation list and applies
// provided options.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := Config{
		Executable:   DefaultExecutable,
		WorkspaceDir: DefaultWorkspaceDir,
		Invocations:  DefaultInvocations(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Executable == "" {
		return Config{}, errors.New("executable must be provided")
	}

	if cfg.WorkspaceDir == "" {
		return Config{}, errors.New("workspace directory must be provided")
	}

	return cfg, nil
}

// WithExecutable overrides the CLI binary to exercise.
func WithExecutable(executable string) ConfigOption {
	return func(cfg *Config) {
		if executable != "" {
			cfg.Executable = executable
		}
	}
}

// WithWorkspaceDir overrides the directory receiving fixture files.
func WithWorkspaceDir(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.WorkspaceDir = path
		}
	}
}

// WithManifestFile points the run at a YAML invocation manifest.
func WithManifestFile(file string) ConfigOption {
	return func(cfg *Config) {
		cfg.ManifestFile = file
	}
}

// WithInvocations replaces the built-in invocation list.
func WithInvocations(invocations []string) ConfigOption {
	return func(cfg *Config) {
		if len(invocations) > 0 {
			cfg.Invocations = append([]string{}, invocations...)
		}
	}
}

// WithAppend toggles appending to existing fixture files instead of
// truncating them.
func WithAppend(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Append = enabled
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
