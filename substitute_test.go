package rec2pdf

import (
	"strings"
	"testing"
	"time"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	values := map[string]string{
		"invoice_id":   "A1",
		"patient.name": "Иван",
		"amount":       "100",
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			name: "round trip with dotted key",
			tmpl: "Hello {{patient.name}}, ID {{invoice_id}}",
			want: "Hello Иван, ID A1",
		},
		{
			name: "whitespace inside braces is trimmed",
			tmpl: "{{ invoice_id }} and {{invoice_id}}",
			want: "A1 and A1",
		},
		{
			name: "unknown key substitutes to empty string",
			tmpl: "[{{missing_key}}]",
			want: "[]",
		},
		{
			name: "no placeholders",
			tmpl: "<p>static</p>",
			want: "<p>static</p>",
		},
		{
			name: "adjacent tokens are non-overlapping",
			tmpl: "{{invoice_id}}{{amount}}",
			want: "A1100",
		},
		{
			name: "unbalanced braces left verbatim",
			tmpl: "{{invoice_id} stays",
			want: "{{invoice_id} stays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Substitute(tt.tmpl, values); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

// A substituted value containing "{{" must not be re-scanned: matching is a
// single left-to-right pass.
func TestSubstituteSinglePass(t *testing.T) {
	t.Parallel()

	values := map[string]string{
		"evil": "{{invoice_id}}",
	}

	got := Substitute("{{evil}}", values)
	if got != "{{invoice_id}}" {
		t.Errorf("Substitute() = %q, want the injected token left verbatim", got)
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	t.Parallel()

	values := map[string]string{"a": "1", "b.c": "2"}
	tmpl := "{{a}}-{{ b.c }}-{{missing}}"

	first := Substitute(tmpl, values)
	second := Substitute(tmpl, values)
	if first != second {
		t.Errorf("Substitute() not deterministic: %q vs %q", first, second)
	}
}

func TestBindBuiltins(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

	t.Run("generated_at always available", func(t *testing.T) {
		t.Parallel()

		values := BindBuiltins(map[string]string{}, at, "")
		got := Substitute("{{generated_at}}", values)
		if got != "2026-03-14 09:26" {
			t.Errorf("generated_at = %q, want %q", got, "2026-03-14 09:26")
		}
	})

	t.Run("custom layout", func(t *testing.T) {
		t.Parallel()

		values := BindBuiltins(map[string]string{}, at, "2006/01/02")
		if values[GeneratedAtKey] != "2026/03/14" {
			t.Errorf("generated_at = %q, want %q", values[GeneratedAtKey], "2026/03/14")
		}
	})

	t.Run("record cannot shadow generated_at", func(t *testing.T) {
		t.Parallel()

		values := BindBuiltins(map[string]string{GeneratedAtKey: "spoofed"}, at, "")
		if values[GeneratedAtKey] == "spoofed" {
			t.Error("record value shadowed generated_at")
		}
	})

	t.Run("table_content holds escaped record", func(t *testing.T) {
		t.Parallel()

		values := BindBuiltins(map[string]string{"note": "<b>raw</b>"}, at, "")
		table := values[TableContentKey]
		if !strings.Contains(table, "&lt;b&gt;raw&lt;/b&gt;") {
			t.Errorf("table_content not escaped: %q", table)
		}
		if !strings.Contains(table, "<th>note</th>") {
			t.Errorf("table_content missing header cell: %q", table)
		}
	})
}

func TestBuildRecordTableDeterministic(t *testing.T) {
	t.Parallel()

	flat := map[string]string{"b": "2", "a": "1", "c": "3"}
	first := buildRecordTable(flat)
	second := buildRecordTable(flat)
	if first != second {
		t.Errorf("buildRecordTable() not deterministic:\n%s\nvs\n%s", first, second)
	}

	// Sorted column order
	aIdx := strings.Index(first, "<th>a</th>")
	bIdx := strings.Index(first, "<th>b</th>")
	cIdx := strings.Index(first, "<th>c</th>")
	if aIdx == -1 || bIdx == -1 || cIdx == -1 || !(aIdx < bIdx && bIdx < cIdx) {
		t.Errorf("columns not sorted by key: %s", first)
	}
}
