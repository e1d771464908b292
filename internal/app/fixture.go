package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fixtureFileSuffix = "-output.txt"

// unsafe-for-filename characters found in invocation strings are replaced
// with a stable separator so the same invocation always maps to the same
// fixture file.
var fileNameSanitizer = strings.NewReplacer(
	" ", "-",
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "-",
	"\"", "-",
	"'", "-",
)

// fixtureFileName derives the fixture file name for an invocation.
func fixtureFileName(invocation string) string {
	return fileNameSanitizer.Replace(invocation) + fixtureFileSuffix
}

// writeFixture persists the captured text for invocation inside the
// workspace. By default the file is truncated so each run yields a fresh
// fixture; append mode accumulates consecutive captures instead.
func (a *App) writeFixture(invocation, text string) error {
	flags := os.O_WRONLY | os.O_CREATE
	if a.cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	path := filepath.Join(a.cfg.WorkspaceDir, fixtureFileName(invocation))

	file, err := a.fs.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open fixture file [%s]: %w", path, err)
	}

	if _, err := file.WriteString(text); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write fixture file [%s]: %w", path, err)
	}

	return file.Close()
}
