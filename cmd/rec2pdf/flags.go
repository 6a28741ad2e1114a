package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags. Every selection flag is optional;
// an unset one falls back to an interactive prompt.
type cliFlags struct {
	config   string
	data     string
	template string
	record   string
	output   string
	fonts    string
	timeout  string
	noOpen   bool
	quiet    bool
	verbose  bool
	help     bool
	version  bool
}

// parseFlags parses command-line flags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("rec2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.data, "data", "", "data file path (skips the data prompt)")
	fs.StringVar(&f.template, "template", "", "template file path (skips the template prompt)")
	fs.StringVar(&f.record, "record", "", "record identifier (skips the record prompt)")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (overrides config)")
	fs.StringVar(&f.fonts, "fonts", "", "font directory searched before system fonts")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the PDF in the viewer")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}

// printUsage writes the CLI help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `rec2pdf - generate PDF documents from CSV/JSON records and HTML templates

Usage:
  rec2pdf [flags]

Without flags the tool is fully interactive: it lists the data files in
data/, the templates in templates/, and the record identifiers in the chosen
file, then renders the selection to output/ and opens the PDF.

Flags:
  -c, --config string     config file name or path
      --data string       data file path (skips the data prompt)
      --template string   template file path (skips the template prompt)
      --record string     record identifier (skips the record prompt)
  -o, --output string     output directory (overrides config)
      --fonts string      font directory searched before system fonts
  -t, --timeout string    PDF rendering timeout (e.g., 30s, 2m)
      --no-open           do not open the PDF in the viewer
  -q, --quiet             only show errors
  -v, --verbose           show detailed progress
  -h, --help              show help
      --version           show version
`)
}
