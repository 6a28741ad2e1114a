//go:build !windows && !darwin

package rec2pdf

// viewerCommand returns the default-application opener on Linux and BSDs.
func viewerCommand(path string) (string, []string) {
	return "xdg-open", []string{path}
}
