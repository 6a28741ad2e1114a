package main

import (
	"errors"
	"os"

	rec2pdf "github.com/alnah/go-rec2pdf"
	"github.com/alnah/go-rec2pdf/internal/config"
	"github.com/alnah/go-rec2pdf/internal/prompt"
)

// Exit codes for the rec2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, data format, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitRender  = 4 // Browser/Chrome rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, rec2pdf.ErrBrowserConnect) ||
		errors.Is(err, rec2pdf.ErrPageCreate) ||
		errors.Is(err, rec2pdf.ErrPageLoad) ||
		errors.Is(err, rec2pdf.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, rec2pdf.ErrWritePDF) ||
		errors.Is(err, ErrNoDataFiles) ||
		errors.Is(err, ErrNoTemplates) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, rec2pdf.ErrUnsupportedFormat) ||
		errors.Is(err, rec2pdf.ErrMalformedData) ||
		errors.Is(err, rec2pdf.ErrRecordNotFound) ||
		errors.Is(err, rec2pdf.ErrInvalidTemplateExtension) ||
		errors.Is(err, rec2pdf.ErrEmptyTemplate) ||
		errors.Is(err, rec2pdf.ErrEmptyRecord) ||
		errors.Is(err, rec2pdf.ErrInvalidPageSize) ||
		errors.Is(err, rec2pdf.ErrInvalidOrientation) ||
		errors.Is(err, rec2pdf.ErrInvalidMargin) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, prompt.ErrInputClosed) {
		return ExitUsage
	}

	return ExitGeneral
}
