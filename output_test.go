package rec2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "plain id", id: "A1", want: "invoice_A1.pdf"},
		{name: "spaces become underscores", id: "A 1 b", want: "invoice_A_1_b.pdf"},
		{name: "reserved characters dropped", id: `a<b>:"/\|?*c`, want: "invoice_abc.pdf"},
		{name: "cyrillic preserved", id: "счет-12", want: "invoice_счет-12.pdf"},
		{name: "empty id falls back", id: "", want: "invoice_record.pdf"},
		{name: "only reserved characters falls back", id: `\/:*`, want: "invoice_record.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputFilename(tt.id); got != tt.want {
				t.Errorf("OutputFilename(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	t.Run("creates output directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "output", "invoice_A1.pdf")
		data := []byte("%PDF-1.7 stub")

		if err := WritePDF(path, data); err != nil {
			t.Fatalf("WritePDF() error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if string(got) != string(data) {
			t.Errorf("written bytes differ")
		}
	})

	t.Run("wraps filesystem failure", func(t *testing.T) {
		t.Parallel()

		// A file where the directory should be forces MkdirAll to fail.
		base := t.TempDir()
		blocker := filepath.Join(base, "output")
		if err := os.WriteFile(blocker, []byte("file"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := WritePDF(filepath.Join(blocker, "invoice.pdf"), []byte("x"))
		if !errors.Is(err, ErrWritePDF) {
			t.Errorf("WritePDF() = %v, want ErrWritePDF", err)
		}
	})
}
