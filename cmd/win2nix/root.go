package main

import (
	"fmt"
	"os"

	"github.com/pathfix/win2nix/pkg/config"
	"github.com/pathfix/win2nix/pkg/processor"
	"github.com/pathfix/win2nix/pkg/status"
	"github.com/pathfix/win2nix/pkg/walker"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	dryRun     bool
	aggressive bool
	parallel   int
	extensions []string
	include    []string
	exclude    []string
)

// defaultConfigFiles are probed in order when --config is not given.
var defaultConfigFiles = []string{".win2nix.yaml", ".win2nix.yml", ".win2nix.hcl"}

// NewRootCmd creates the win2nix root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "win2nix ROOT",
		Short: "Convert Windows path slashes to POSIX slashes",
		Long: `win2nix scans a directory tree and rewrites Windows-style backslash
path separators to POSIX forward slashes. By default only the contents of
quoted string literals are touched, which keeps escape sequences like \n
intact. With --aggressive, unquoted path-like tokens are converted too.

Files with zero replacements are never rewritten.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := zerolog.DefaultContextLogger.WithContext(cmd.Context())

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			files, err := walker.Walk(ctx, args[0], walker.Options{
				Extensions: cfg.Extensions,
				Include:    cfg.Include,
				Exclude:    cfg.Exclude,
			})
			if err != nil {
				return errors.Errorf("collecting files: %w", err)
			}

			formatter := status.NewDefaultFileFormatter()
			proc, err := processor.New(processor.Options{
				Aggressive: cfg.Aggressive,
				DryRun:     cfg.DryRun,
				Parallel:   cfg.Parallel,
				Formatter:  formatter,
				Console:    cmd.OutOrStdout(),
			})
			if err != nil {
				return errors.Errorf("creating processor: %w", err)
			}

			totals, err := proc.Run(ctx, files)
			if err != nil {
				return errors.Errorf("processing files: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(totals.FilesChanged, totals.Replacements))
			status.NewUserLogger(ctx).LogSummary(totals.FilesChanged, totals.Replacements, totals.FilesSkipped)
			return nil
		},
	}

	addRootFlags(cmd)
	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path (default: probe .win2nix.yaml/.yml/.hcl)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes but do not modify files")
	cmd.Flags().BoolVar(&aggressive, "aggressive", false, "also convert unquoted Windows-like paths (use with care)")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "max files processed concurrently (0 or 1 = sequential)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extensions to process")
	cmd.Flags().StringSliceVar(&include, "include", nil, "glob(s) to include, relative to ROOT")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "glob(s) to exclude, relative to ROOT")
}

// resolveConfig merges the optional config file with flag overrides. Flags
// that were set on the command line always win.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	cfg := config.Default()

	path := configFile
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		loaded, err := config.Load(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("ext") {
		cfg.Extensions = extensions
	}
	if cmd.Flags().Changed("include") {
		cfg.Include = include
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = exclude
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if cmd.Flags().Changed("aggressive") {
		cfg.Aggressive = aggressive
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = parallel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
