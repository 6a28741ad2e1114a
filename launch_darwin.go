//go:build darwin

package rec2pdf

// viewerCommand returns the default-application opener on macOS.
func viewerCommand(path string) (string, []string) {
	return "open", []string{path}
}
