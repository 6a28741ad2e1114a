package rec2pdf

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-rec2pdf/internal/assets"
)

// stubConverter captures the HTML handed to the renderer so pipeline tests
// run without a browser.
type stubConverter struct {
	html   string
	page   *PageSettings
	out    []byte
	err    error
	closed bool
}

func (s *stubConverter) ToPDF(_ context.Context, htmlContent string, page *PageSettings) ([]byte, error) {
	s.html = htmlContent
	s.page = page
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func (s *stubConverter) Close() error {
	s.closed = true
	return nil
}

// newStubService builds a Service backed by a stubConverter.
func newStubService(opts ...Option) (*Service, *stubConverter) {
	stub := &stubConverter{out: []byte("%PDF-stub")}
	svc := &Service{
		cfg: serviceConfig{
			timeout:         defaultTimeout,
			timestampLayout: defaultTimestampLayout,
		},
		baseCSS:      assets.DefaultStyle(),
		pdfConverter: stub,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, stub
}

func TestServiceGenerate(t *testing.T) {
	t.Parallel()

	svc, stub := newStubService()

	input := Input{
		TemplateHTML: "<html><head></head><body>Hello {{patient.name}}, ID {{invoice_id}}</body></html>",
		Record: rec(
			"invoice_id", "A1",
			"patient", map[string]any{"name": "Иван"},
		),
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}

	pdf, err := svc.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(pdf) != "%PDF-stub" {
		t.Errorf("Generate() returned %q, want stub bytes", pdf)
	}

	if !strings.Contains(stub.html, "Hello Иван, ID A1") {
		t.Errorf("placeholders not substituted: %q", stub.html)
	}
	if !strings.Contains(stub.html, "<style>") {
		t.Errorf("base stylesheet not injected: %q", stub.html)
	}
}

func TestServiceGenerateBindsGeneratedAt(t *testing.T) {
	t.Parallel()

	svc, stub := newStubService()

	_, err := svc.Generate(context.Background(), Input{
		TemplateHTML: "<body>{{generated_at}}</body>",
		Record:       rec("id", "1"),
		GeneratedAt:  time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(stub.html, "2026-03-14 09:26") {
		t.Errorf("generated_at not bound: %q", stub.html)
	}
}

func TestServiceGenerateEmbedsFont(t *testing.T) {
	t.Parallel()

	svc, stub := newStubService()

	_, err := svc.Generate(context.Background(), Input{
		TemplateHTML: "<head></head><body>x</body>",
		Record:       rec("id", "1"),
		FontPath:     "/fonts/DejaVuSans.ttf",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(stub.html, "@font-face") {
		t.Errorf("font face not injected: %q", stub.html)
	}
}

func TestServiceGeneratePassesPageSettings(t *testing.T) {
	t.Parallel()

	svc, stub := newStubService()
	page := &PageSettings{Size: "letter", Orientation: "landscape", Margin: 1}

	_, err := svc.Generate(context.Background(), Input{
		TemplateHTML: "<body>x</body>",
		Record:       rec("id", "1"),
		Page:         page,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if stub.page != page {
		t.Errorf("page settings not passed through")
	}
}

func TestServiceGenerateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty template",
			input:   Input{Record: rec("id", "1")},
			wantErr: ErrEmptyTemplate,
		},
		{
			name:    "empty record",
			input:   Input{TemplateHTML: "<body></body>"},
			wantErr: ErrEmptyRecord,
		},
		{
			name: "invalid page size",
			input: Input{
				TemplateHTML: "<body></body>",
				Record:       rec("id", "1"),
				Page:         &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 1},
			},
			wantErr: ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newStubService()
			_, err := svc.Generate(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceGenerateRenderFailure(t *testing.T) {
	t.Parallel()

	svc, stub := newStubService()
	stub.err = ErrPDFGeneration

	_, err := svc.Generate(context.Background(), Input{
		TemplateHTML: "<body></body>",
		Record:       rec("id", "1"),
	})
	if !errors.Is(err, ErrPDFGeneration) {
		t.Errorf("Generate() = %v, want ErrPDFGeneration", err)
	}
}

func TestServiceClose(t *testing.T) {
	t.Parallel()

	svc, stub := newStubService()
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !stub.closed {
		t.Error("Close() did not reach the converter")
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
