package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	rec2pdf "github.com/alnah/go-rec2pdf"
	"github.com/alnah/go-rec2pdf/internal/config"
	"github.com/alnah/go-rec2pdf/internal/fileutil"
	"github.com/alnah/go-rec2pdf/internal/prompt"
)

// Sentinel errors for CLI operations.
var (
	ErrNoDataFiles    = errors.New("no CSV or JSON files found in data directory")
	ErrNoTemplates    = errors.New("no HTML templates found in template directory")
	ErrInvalidTimeout = errors.New("invalid timeout value")
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input rec2pdf.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Generator = (*rec2pdf.Service)(nil)

// run drives one generation: select data file, template and record, render,
// write, open. Every failure aborts the run; only the viewer launch is
// reported as a warning and ignored.
func run(ctx context.Context, flags *cliFlags, cfg *config.Config, svc Generator, env *Environment) error {
	// SelectData
	dataPath, err := selectDataFile(flags, cfg, env)
	if err != nil {
		return err
	}

	records, err := rec2pdf.LoadRecords(dataPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s holds no records", rec2pdf.ErrMalformedData, dataPath)
	}
	verbosef(flags, env, "Loaded %d record(s) from %s\n", len(records), dataPath)

	// SelectTemplate
	templatePath, err := selectTemplateFile(flags, cfg, env)
	if err != nil {
		return err
	}

	templateHTML, err := rec2pdf.LoadTemplate(templatePath)
	if err != nil {
		return err
	}
	verbosef(flags, env, "Loaded template %s\n", templatePath)

	// SelectRecord
	recordID, record, err := selectRecord(flags, records, env)
	if err != nil {
		return err
	}
	verbosef(flags, env, "Selected record %q\n", recordID)

	// Locate a cyrillic-capable font; the base stylesheet falls back to
	// locally installed families when none is found.
	fontPath := resolveFont(flags, cfg, env)

	// Render
	pdfBytes, err := svc.Generate(ctx, rec2pdf.Input{
		TemplateHTML: templateHTML,
		Record:       record,
		FontPath:     fontPath,
		Page:         pageSettings(cfg),
		GeneratedAt:  env.Now(),
	})
	if err != nil {
		return fmt.Errorf("generating PDF for record %q: %w", recordID, err)
	}

	// Write
	outputDir := cfg.Dirs.Output
	if flags.output != "" {
		outputDir = flags.output
	}
	outputPath := filepath.Join(outputDir, rec2pdf.OutputFilename(recordID))
	if err := rec2pdf.WritePDF(outputPath, pdfBytes); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}

	// Open (best-effort)
	if cfg.Output.OpenViewer && !flags.noOpen {
		if err := env.Open(outputPath); err != nil {
			fmt.Fprintf(env.Stderr, "warning: %v\n", err)
		}
	}

	return nil
}

// selectDataFile resolves the data file from the flag or an interactive
// listing of the data directory.
func selectDataFile(flags *cliFlags, cfg *config.Config, env *Environment) (string, error) {
	if flags.data != "" {
		return flags.data, nil
	}

	names, err := fileutil.ListFiles(cfg.Dirs.Data, ".csv", ".json")
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoDataFiles, cfg.Dirs.Data)
	}

	items := make([]string, len(names))
	for i, name := range names {
		kind := "JSON"
		if strings.EqualFold(filepath.Ext(name), ".csv") {
			kind = "CSV"
		}
		items[i] = fmt.Sprintf("%s (%s)", name, kind)
	}

	prompt.Menu(env.Stdout, "AVAILABLE DATA FILES", items)
	idx, err := prompt.Choose(env.Stdin, env.Stdout, len(names), "Select a data file")
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.Dirs.Data, names[idx]), nil
}

// selectTemplateFile resolves the template from the flag or an interactive
// listing of the template directory.
func selectTemplateFile(flags *cliFlags, cfg *config.Config, env *Environment) (string, error) {
	if flags.template != "" {
		return flags.template, nil
	}

	names, err := fileutil.ListFiles(cfg.Dirs.Templates, ".html", ".htm")
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoTemplates, cfg.Dirs.Templates)
	}

	name, err := prompt.Select(env.Stdin, env.Stdout, "AVAILABLE HTML TEMPLATES", "Select a template", names)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.Dirs.Templates, name), nil
}

// selectRecord resolves the record from the flag or an interactive listing
// of record identifiers.
func selectRecord(flags *cliFlags, records []rec2pdf.Record, env *Environment) (string, rec2pdf.Record, error) {
	if flags.record != "" {
		record, err := rec2pdf.FindRecordByID(records, flags.record)
		if err != nil {
			return "", rec2pdf.Record{}, err
		}
		return flags.record, record, nil
	}

	ids := rec2pdf.RecordIDs(records)
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = "Invoice ID: " + id
	}

	title := fmt.Sprintf("AVAILABLE RECORDS - Total: %d", len(ids))
	prompt.Menu(env.Stdout, title, items)
	idx, err := prompt.Choose(env.Stdin, env.Stdout, len(ids), "Select a record")
	if err != nil {
		return "", rec2pdf.Record{}, err
	}
	return ids[idx], records[idx], nil
}

// resolveFont locates a font file; a miss is reported in verbose mode only.
func resolveFont(flags *cliFlags, cfg *config.Config, env *Environment) string {
	fontsDir := cfg.Dirs.Fonts
	if flags.fonts != "" {
		fontsDir = flags.fonts
	}

	fontPath, err := rec2pdf.FindFont(fontsDir)
	if err != nil {
		verbosef(flags, env, "No embeddable font found, relying on system fonts: %v\n", err)
		return ""
	}
	verbosef(flags, env, "Embedding font %s\n", fontPath)
	return fontPath
}

// pageSettings builds page settings from config, keeping library defaults
// for unset fields.
func pageSettings(cfg *config.Config) *rec2pdf.PageSettings {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil
	}

	ps := rec2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		ps.Margin = cfg.Page.Margin
	}
	return ps
}

// resolveTimeout parses the --timeout flag into service options.
func resolveTimeout(value string) ([]rec2pdf.Option, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, value)
	}
	return []rec2pdf.Option{rec2pdf.WithTimeout(d)}, nil
}

// verbosef prints progress detail when --verbose is set.
func verbosef(flags *cliFlags, env *Environment, format string, args ...any) {
	if flags.verbose {
		fmt.Fprintf(env.Stderr, format, args...)
	}
}
