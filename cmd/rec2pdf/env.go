package main

import (
	"io"
	"os"
	"time"

	rec2pdf "github.com/alnah/go-rec2pdf"
)

// Environment holds injectable dependencies for testability:
// I/O streams, time, and the viewer launcher.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Open   func(path string) error
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Open:   rec2pdf.OpenInViewer,
	}
}
