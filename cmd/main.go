// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"fir-scan/internal/analyzer"
	"fir-scan/internal/config"
	"fir-scan/internal/formatters"
	_ "fir-scan/internal/formatters/json"
	_ "fir-scan/internal/formatters/text"
	_ "fir-scan/internal/formatters/yaml"
	"fir-scan/internal/observability"
	"fir-scan/internal/preprocessors"
	"fir-scan/internal/version"
)

// cliFlags holds raw command line flag values.
type cliFlags struct {
	file        string
	format      string
	output      string
	configFile  string
	profile     string
	verbose     bool
	debug       bool
	noColor     bool
	showVersion bool
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := loadConfiguration(flags.configFile)
	settings, err := cfg.Resolve(flags.profile)
	if err != nil {
		fatal(err)
	}
	final := resolveConfiguration(settings, flags)

	text, err := readNarrative(flags.file)
	if err != nil {
		fatal(err)
	}

	var observer observability.Observer = observability.NewStandardObserver()
	if final.debug || os.Getenv("FIR_DEBUG") != "" {
		observer = observability.NewDebugObserver()
	}

	report := analyzer.New(analyzer.Options{Observer: observer}).Analyze(text)

	formatter, err := formatters.Get(final.format)
	if err != nil {
		fatal(err)
	}
	out, err := formatter.Format(report, formatters.Options{
		Verbose: final.verbose,
		NoColor: final.noColor,
	})
	if err != nil {
		fatal(err)
	}

	if final.output != "" {
		if err := os.WriteFile(final.output, []byte(out), 0o644); err != nil {
			fatal(fmt.Errorf("writing report: %w", err))
		}
		return
	}
	fmt.Print(out)
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.file, "file", "", "FIR narrative to analyze (.txt or .pdf); reads stdin when omitted")
	flag.StringVar(&flags.format, "format", "", "output format: "+joinAvailable())
	flag.StringVar(&flags.output, "output", "", "write the report to a file instead of stdout")
	flag.StringVar(&flags.configFile, "config", "", "config file path (default: search standard locations)")
	flag.StringVar(&flags.profile, "profile", "", "config profile to apply")
	flag.BoolVar(&flags.verbose, "verbose", false, "include investigation guidance and bail conditions")
	flag.BoolVar(&flags.debug, "debug", false, "trace pipeline stages on stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return flags
}

func joinAvailable() string {
	names := formatters.Available()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func loadConfiguration(path string) *config.Config {
	cfg, err := config.LoadConfigOrDefault(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default configuration")
		return config.DefaultConfig()
	}
	return cfg
}

// finalConfiguration is the fully resolved run configuration: config
// defaults, then profile, then explicitly set flags.
type finalConfiguration struct {
	format  string
	output  string
	verbose bool
	debug   bool
	noColor bool
}

func resolveConfiguration(settings config.Settings, flags *cliFlags) *finalConfiguration {
	final := &finalConfiguration{
		format:  settings.Format,
		output:  settings.Output,
		verbose: settings.Verbose,
		debug:   settings.Debug,
		noColor: settings.NoColor,
	}
	if final.format == "" {
		final.format = "text"
	}
	if isFlagSet("format") && flags.format != "" {
		final.format = flags.format
	}
	if isFlagSet("output") {
		final.output = flags.output
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	// A redirected stdout never gets ANSI colors.
	if final.output == "" && !term.IsTerminal(int(os.Stdout.Fd())) {
		final.noColor = true
	}
	return final
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func readNarrative(path string) (string, error) {
	if path != "" {
		return preprocessors.ReadNarrative(path)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no input: pass -file or pipe a narrative on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
