package app

const (
	// DefaultExecutable is the CLI whose outputs the e2e suite pins.
	DefaultExecutable = "score-compose"

	// DefaultWorkspaceDir receives one fixture file per invocation.
	DefaultWorkspaceDir = "temp"
)

// DefaultInvocations returns the built-in argument combinations exercised
// against the executable. The order is fixed; captures run strictly
// sequentially in list order.
func DefaultInvocations() []string {
	return []string{
		"--help",
		"completion",
		"completion bash",
		"completion bash --help",
		"completion fish",
		"completion fish --help",
		"completion powershell",
		"completion powershell --help",
		"completion zsh",
		"completion zsh --help",
		"run",
		"run --help",
		"unknown",
		"--version",
		"run -f example-score.yaml",
		"run -f example-score.yaml --build test",
		"run -f example-score.yaml --overrides overrides.yaml",
		"run --verbose",
	}
}
