// Package yamlutil funnels YAML decoding through one place so every caller
// gets the same input limits and the decoder dependency stays swappable.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input. Config files are tiny; anything larger is a
// mistake or hostile.
const MaxInputSize = 1 << 20

// Sentinel errors for YAML operations.
var (
	ErrEmptyInput    = errors.New("yamlutil: empty input")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input too large")
)

// Unmarshal decodes YAML into target.
func Unmarshal(data []byte, target any) error {
	if err := checkInput(data, target); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict decodes YAML into target, rejecting unknown fields.
// Config loading uses this so typos surface instead of silently keeping
// defaults.
func UnmarshalStrict(data []byte, target any) error {
	if err := checkInput(data, target); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, target, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

func checkInput(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if target == nil {
		return ErrNilTarget
	}
	return nil
}
