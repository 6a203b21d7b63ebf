package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/config"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/report"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/scss"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/similarity"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/tui"
	"github.com/lunit-heesungyang/scss-color-similarity/pkg/logging"
)

var appVersion = "0.1.0"

// runTUI is swapped out in tests
var runTUI = tui.Run

type options struct {
	threshold   float64
	format      string
	configPath  string
	interactive bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "scss-color-similarity <file>",
		Short: "Find nearly identical color variables in a stylesheet",
		Long: `scss-color-similarity scans a stylesheet for color variable declarations
such as "$brand-red: #e30613;" and reports pairs whose colors are nearly
identical, so redundant palette entries can be consolidated.

Two colors are similar when the Euclidean distance between their RGB values
is below the threshold. Identical colors have distance 0; black and white
are about 441.67 apart.

Defaults can be set in ~/.config/scss-color-similarity/config.yaml or in
.scss-color-similarity.yaml in the current directory.`,
		Version:       appVersion,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return opts.run(cmd, args[0])
		},
	}

	cmd.SetVersionTemplate(`{{printf "scss-color-similarity version %s\n" .Version}}`)

	cmd.Flags().Float64VarP(&opts.threshold, "threshold", "t", similarity.DefaultThreshold, "Threshold for color similarity")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Report format: text, json or yaml")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: user and project config)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse similar pairs in a terminal UI")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func (o *options) run(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	// Override config with CLI flags only if they were explicitly provided
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = o.threshold
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = o.format
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	palette, err := scss.ReadFile(path)
	if err != nil {
		return err
	}
	logging.Debug("Extractor", "found %d color variables in %s", palette.Len(), path)
	logging.Debug("Extractor", "palette %v", palette.Map())

	pairs, err := similarity.FindSimilar(palette, cfg.Threshold)
	rep := report.Report{
		File:      path,
		Threshold: cfg.Threshold,
		Variables: palette.Len(),
		Pairs:     pairs,
	}
	for _, skipped := range similarity.Skipped(err) {
		logging.Warn("Similarity", "skipping %v", skipped)
		rep.Skipped = append(rep.Skipped, skipped.Variable)
	}
	logging.Debug("Similarity", "%d of %d pairs below threshold %g",
		len(pairs), palette.Len()*(palette.Len()-1)/2, cfg.Threshold)

	if o.interactive {
		if err := runTUI(rep); err != nil {
			logging.Error("TUI", err, "browser exited")
			return err
		}
		return nil
	}
	if err := report.Write(cmd.OutOrStdout(), cfg.Format, rep); err != nil {
		logging.Error("Report", err, "writing %s report", cfg.Format)
		return err
	}
	return nil
}

// execute runs the command and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var nf *scss.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(stderr, "File not found: %s\n", nf.Path)
			return 1
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
