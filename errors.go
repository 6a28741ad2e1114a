package rec2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate     = errors.New("template content cannot be empty")
	ErrEmptyRecord       = errors.New("record cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	ErrMalformedData     = errors.New("malformed data file")
	ErrRecordNotFound    = errors.New("record not found")
	ErrNoFontFound       = errors.New("no usable font file found")

	// Rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Output errors.
	ErrWritePDF = errors.New("failed to write PDF file")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
