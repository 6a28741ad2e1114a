package rec2pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidTemplateExtension indicates a template without .html/.htm.
var ErrInvalidTemplateExtension = errors.New("template must have .html or .htm extension")

// LoadTemplate reads an HTML template file as raw text.
// The extension must be .html or .htm (case-insensitive). A missing file
// surfaces os.ErrNotExist through the wrapped error.
func LoadTemplate(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".html" && ext != ".htm" {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTemplateExtension, filepath.Ext(path))
	}

	content, err := os.ReadFile(path) // #nosec G304 -- operator-selected path
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(content), nil
}
