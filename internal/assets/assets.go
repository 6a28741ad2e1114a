// Package assets provides the embedded base stylesheet for rendered
// documents.
package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

// DefaultStyle returns the base stylesheet applied to every document:
// A4 page, a cyrillic-capable font stack, and striped data tables.
func DefaultStyle() string {
	content, err := styles.ReadFile("styles/default.css")
	if err != nil {
		// Embedded at build time; a read failure is a packaging bug.
		panic(fmt.Sprintf("assets: missing embedded default style: %v", err))
	}
	return string(content)
}
