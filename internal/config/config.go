// Package config loads the optional YAML configuration of the generator.
// Defaults follow the convention directories data/, templates/, output/ and
// fonts/ so the tool runs with no config file at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-rec2pdf/internal/dateutil"
	"github.com/alnah/go-rec2pdf/internal/fileutil"
	"github.com/alnah/go-rec2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for PDF generation.
type Config struct {
	Dirs        DirsConfig   `yaml:"dirs"`
	Page        PageConfig   `yaml:"page"`
	Output      OutputConfig `yaml:"output"`
	GeneratedAt string       `yaml:"generatedAt"` // dateutil token format for {{generated_at}}
}

// DirsConfig defines the convention directories.
type DirsConfig struct {
	Data      string `yaml:"data"`      // input data files (default "data")
	Templates string `yaml:"templates"` // HTML templates (default "templates")
	Output    string `yaml:"output"`    // generated PDFs (default "output")
	Fonts     string `yaml:"fonts"`     // operator fonts, searched before system dirs (default "fonts")
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal" (default "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default 0.79 ≈ 2cm)
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	OpenViewer bool `yaml:"openViewer"` // open the PDF after writing (default true)
}

// DefaultConfig returns the convention-over-configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Dirs: DirsConfig{
			Data:      "data",
			Templates: "templates",
			Output:    "output",
			Fonts:     "fonts",
		},
		Output:      OutputConfig{OpenViewer: true},
		GeneratedAt: dateutil.DefaultTimestampFormat,
	}
}

// Validate checks config fields that have constrained values.
func (c *Config) Validate() error {
	if c.GeneratedAt != "" {
		if _, err := dateutil.ParseFormat(c.GeneratedAt); err != nil {
			return fmt.Errorf("generatedAt: %w", err)
		}
	}
	return nil
}

// TimestampLayout returns the Go time layout for {{generated_at}}.
// Validate must have accepted the config first.
func (c *Config) TimestampLayout() string {
	format := c.GeneratedAt
	if format == "" {
		format = dateutil.DefaultTimestampFormat
	}
	layout, err := dateutil.ParseFormat(format)
	if err != nil {
		layout, _ = dateutil.ParseFormat(dateutil.DefaultTimestampFormat)
	}
	return layout
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
// Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-rec2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-rec2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
