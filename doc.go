// Package rec2pdf turns tabular records (CSV or JSON) into PDF documents
// by filling an HTML template and rendering it with headless Chrome.
//
// # Quick Start
//
// Create a service, generate a PDF for one record, and close when done:
//
//	svc := rec2pdf.New()
//	defer svc.Close()
//
//	records, err := rec2pdf.LoadRecords("data/invoices.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tmpl, err := rec2pdf.LoadTemplate("templates/invoice.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pdf, err := svc.Generate(ctx, rec2pdf.Input{
//	    TemplateHTML: tmpl,
//	    Record:       records[0],
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output/invoice_A1.pdf", pdf, 0o644)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Record flattening (nested keys joined with ".")
//  2. Placeholder substitution ({{key}} and {{a.b}} tokens)
//  3. HTML injection (base stylesheet, cyrillic font face)
//  4. PDF rendering via headless Chrome (go-rod)
//
// # Placeholders
//
// Templates use {{key}} tokens. Whitespace inside the braces is ignored, so
// {{ key }} and {{key}} are equivalent. Nested JSON values are addressed by
// dotted path: {{patient.name}}. Unknown keys substitute to the empty
// string. Two keys are always available regardless of record content:
// generated_at (the run timestamp) and table_content (the whole record as an
// HTML table). Substitution is a single left-to-right pass; substituted
// values are never re-scanned.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := rec2pdf.New(rec2pdf.WithTimeout(2 * time.Minute))
//
// Per-generation options are passed via Input:
//
//	pdf, err := svc.Generate(ctx, rec2pdf.Input{
//	    TemplateHTML: tmpl,
//	    Record:       rec,
//	    FontPath:     "fonts/DejaVuSans.ttf",
//	    Page:         &rec2pdf.PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.5},
//	})
package rec2pdf
