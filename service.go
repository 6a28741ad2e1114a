package rec2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-rec2pdf/internal/assets"
)

// Service orchestrates the record-to-PDF pipeline.
type Service struct {
	cfg          serviceConfig
	baseCSS      string
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:         defaultTimeout,
			timestampLayout: defaultTimestampLayout,
		},
		baseCSS: assets.DefaultStyle(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline for one record and returns the PDF bytes.
// The context is used for cancellation and timeout.
func (s *Service) Generate(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Flatten record and bind the always-available keys
	generatedAt := input.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	values := BindBuiltins(Flatten(input.Record), generatedAt, s.cfg.timestampLayout)

	// Substitute placeholders (single pass)
	htmlContent := Substitute(input.TemplateHTML, values)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Inject base stylesheet, font face, and caller CSS
	cssContent := s.baseCSS + buildFontFaceCSS(input.FontPath) + input.CSS
	htmlContent = injectCSS(htmlContent, cssContent)

	// Render to PDF
	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, input.Page)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.TemplateHTML == "" {
		return ErrEmptyTemplate
	}
	if input.Record.Len() == 0 {
		return ErrEmptyRecord
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}
