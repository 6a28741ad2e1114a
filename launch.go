package rec2pdf

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// OpenInViewer asks the OS default application to open the file at path.
// The viewer process is started detached; a failure to start it is returned
// so the caller can report it, but generation has already succeeded at that
// point and callers treat the error as a warning.
func OpenInViewer(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	name, args := viewerCommand(abs)
	cmd := exec.Command(name, args...) // #nosec G204 -- fixed command, path argument only
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s with %s: %w", abs, name, err)
	}

	// Detach: the viewer outlives this process.
	go func() { _ = cmd.Wait() }()
	return nil
}
