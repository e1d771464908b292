package ports

// CmdRunner executes an external command and returns its combined
// stdout and stderr as a single string, in the order the process
// produced it.
type CmdRunner interface {
	Run(cmd string, args ...string) (output string, err error)
}

// FileReader exposes read access to file contents.
type FileReader interface {
	ReadFile(file string) []byte
}

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}
