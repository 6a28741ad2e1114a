//go:build windows

package rec2pdf

// viewerCommand returns the default-application opener on Windows.
// An empty title argument is required so paths with spaces are not taken
// as the window title.
func viewerCommand(path string) (string, []string) {
	return "cmd", []string{"/c", "start", "", path}
}
