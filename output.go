package rec2pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// OutputFilename derives the PDF filename for a record selector.
// Characters that are unsafe in filenames are dropped and spaces become
// underscores, mirroring how selectors appear in the record list.
func OutputFilename(recordID string) string {
	return "invoice_" + sanitizeFilename(recordID) + ".pdf"
}

// sanitizeFilename strips filesystem-reserved characters from a selector.
func sanitizeFilename(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return -1
		case ' ':
			return '_'
		}
		return r
	}, s)
	if cleaned == "" {
		return "record"
	}
	return cleaned
}

// WritePDF writes PDF bytes to path, creating the output directory when
// missing. A failed write leaves any partial file on disk; the caller
// reports the error and the operator cleans up.
func WritePDF(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePDF, path, err)
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePDF, path, err)
	}
	return nil
}
