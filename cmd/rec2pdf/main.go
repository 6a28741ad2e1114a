package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	rec2pdf "github.com/alnah/go-rec2pdf"
	"github.com/alnah/go-rec2pdf/internal/config"
	"github.com/alnah/go-rec2pdf/internal/dateutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.help {
		printUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if flags.version {
		fmt.Println("rec2pdf " + Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()
	if err := realMain(flags, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// realMain wires config and service, then hands off to run.
func realMain(flags *cliFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	opts, err := resolveTimeout(flags.timeout)
	if err != nil {
		return err
	}

	layout := cfg.TimestampLayout()
	if layout == "" {
		layout, _ = dateutil.ParseFormat(dateutil.DefaultTimestampFormat)
	}
	opts = append(opts, rec2pdf.WithTimestampLayout(layout))

	svc := rec2pdf.New(opts...)
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			fmt.Fprintf(env.Stderr, "warning: closing browser: %v\n", cerr)
		}
	}()

	return run(context.Background(), flags, cfg, svc, env)
}
