package app

import (
	"fmt"

	"github.com/spf13/afero"
)

// resetWorkspace destroys any previous content at path and recreates it as
// an empty directory. Removal tolerates a missing directory, so the first
// run on a fresh checkout succeeds.
func resetWorkspace(fs afero.Fs, path string) error {
	if err := fs.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove workspace [%s]: %w", path, err)
	}

	if err := fs.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create workspace [%s]: %w", path, err)
	}

	return nil
}
