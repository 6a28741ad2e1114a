package rec2pdf

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Keys bound on every substitution regardless of record content.
const (
	// GeneratedAtKey always resolves to the run timestamp.
	GeneratedAtKey = "generated_at"
	// TableContentKey always resolves to the whole record rendered as an
	// HTML table.
	TableContentKey = "table_content"
)

// placeholderPattern matches {{key}} tokens with optional whitespace inside
// the braces. The key is a dotted path; anything except braces is allowed in
// a segment, so CSV headers in any script work.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Substitute replaces every {{key}} token in tmpl with the flattened value
// for key. Whitespace directly inside the braces is trimmed, so {{ key }}
// and {{key}} are equivalent.
//
// Unknown keys substitute to the empty string; this policy is fixed and
// never varies by input shape. Matching is non-overlapping, left-to-right,
// single pass: a substituted value containing "{{" is not re-scanned, so the
// result is stable under repeated substitution with the same values.
func Substitute(tmpl string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		key := strings.TrimSpace(token[2 : len(token)-2])
		return values[key]
	})
}

// BindBuiltins adds the always-available keys to a flattened record,
// returning the same map. Record values win only for table_content ordering;
// generated_at and table_content themselves are always overwritten so that
// templates can rely on them independent of record content.
func BindBuiltins(flat map[string]string, generatedAt time.Time, layout string) map[string]string {
	if layout == "" {
		layout = defaultTimestampLayout
	}
	flat[TableContentKey] = buildRecordTable(flat)
	flat[GeneratedAtKey] = generatedAt.Format(layout)
	return flat
}

// buildRecordTable renders the flattened record as a two-row HTML table:
// header cells from the dotted keys, data cells from the values. Keys and
// values are HTML-escaped. Columns are sorted by key for deterministic
// output.
func buildRecordTable(flat map[string]string) string {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		if k == TableContentKey || k == GeneratedAtKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>\n")
	for _, k := range keys {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(k))
		b.WriteString("</th>\n")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n<tr>\n")
	for _, k := range keys {
		b.WriteString("<td>")
		b.WriteString(html.EscapeString(flat[k]))
		b.WriteString("</td>\n")
	}
	b.WriteString("</tr>\n</tbody>\n</table>")
	return b.String()
}
