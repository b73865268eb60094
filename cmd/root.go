package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/runner"
	"github.com/gopak/minigrep/internal/ui/console"
)

var version = "dev"

type flags struct {
	verbose     bool
	logFile     string
	optionsFile string
	format      string
	lineNumbers bool
	count       bool
	prompt      bool
}

// ParseError marks failures that happen before the search runs: bad flags,
// missing arguments or an unusable options file.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorMessage formats err the way it is shown on stderr before exiting.
func ErrorMessage(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return "Problem parsing arguments: " + perr.Error()
	}
	return "App error: " + err.Error()
}

func Execute() error {
	defer logging.Close()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "minigrep [flags] <query> <file_path>",
		Short:         "Print the lines of a file that contain a query",
		Long:          "Print the lines of a file that contain a query.\n\nSet " + config.IgnoreCaseEnv + " (to any value) for a case-insensitive search.",
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(logging.Options{Verbose: f.verbose, File: f.logFile, Stderr: cmd.ErrOrStderr()}); err != nil {
				return &ParseError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &ParseError{Err: err} })

	fl := cmd.Flags()
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log detailed steps to stderr")
	fl.StringVar(&f.logFile, "log-file", "", "also append JSON logs to this file")
	fl.StringVar(&f.optionsFile, "options", "", "YAML file with output options (format, line_numbers, count)")
	fl.StringVarP(&f.format, "format", "f", "", "output format: plain, table, json or yaml")
	fl.BoolVarP(&f.lineNumbers, "line-number", "n", false, "prefix each line with its line number")
	fl.BoolVarP(&f.count, "count", "c", false, "print only the number of matching lines")
	fl.BoolVar(&f.prompt, "prompt", false, "ask for a missing query or file path")
	return cmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	if f.prompt && len(args) < 2 {
		var err error
		if args, err = console.PromptMissing(args); err != nil {
			return &ParseError{Err: err}
		}
	}
	cfg, err := config.Build(append([]string{cmd.Root().Name()}, args...))
	if err != nil {
		return &ParseError{Err: err}
	}
	if len(args) > 2 {
		logging.Debug("ignoring extra arguments", zap.Strings("args", args[2:]))
	}
	opts, err := resolveOptions(cmd, f)
	if err != nil {
		return &ParseError{Err: err}
	}
	rep, err := console.NewReporter(cmd.OutOrStdout(), opts)
	if err != nil {
		return &ParseError{Err: err}
	}
	logging.Debug("config resolved",
		zap.String("query", cfg.Query),
		zap.String("path", cfg.FilePath),
		zap.Bool("ignore_case", cfg.IgnoreCase),
		zap.String("format", string(opts.Format)))
	return runner.New(runner.OSFileSystem{}, rep).Run(cfg)
}

// resolveOptions layers the options file over the embedded defaults, then
// the flags the user actually set over both.
func resolveOptions(cmd *cobra.Command, f flags) (config.Options, error) {
	opts, err := config.LoadOptions(assets.DefaultOptions(), f.optionsFile)
	if err != nil {
		return config.Options{}, err
	}
	var overlay config.Options
	fl := cmd.Flags()
	if fl.Changed("format") {
		overlay.Format = config.Format(f.format)
	}
	if fl.Changed("line-number") {
		overlay.LineNumbers = &f.lineNumbers
	}
	if fl.Changed("count") {
		overlay.Count = &f.count
	}
	opts = config.MergeOptions(opts, overlay)
	if err := config.ValidateAgainstSchema(opts); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}
