/*
Package commands implements the CLI command structure for dirguard.
It provides the root command, which reconciles a directory with its
expected file list, and the generate and version subcommands.
*/
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sonemaro/dirguard/cmd/dirguard/app"
	"github.com/sonemaro/dirguard/internal/config"
	"github.com/sonemaro/dirguard/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options holds command-line options that apply to all commands
type Options struct {
	Settings   config.Settings
	ConfigPath string
	Verbose    int
	NoColor    bool
	Output     string
	LogFormat  string

	// Fs replaces the OS filesystem, used by tests
	Fs afero.Fs
}

// ReportedError wraps an error whose details were already written to the
// command's output.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err was already presented to the user.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand(&Options{})
}

func newRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirguard [flags] key=value...",
		Short: "Check a directory against its expected file list",
		Long: `dirguard v` + version.Version + `
========================================

Verifies that the files directly inside a directory match an expected file
list, or generates that list from the directory.

Arguments are order-independent key=value tokens:

  check-folder-for-files=DIR           directory to scan (required)
  required-files-file=FILE             expected-list file (required)
  suffix=.java,.kt                     only consider names with these suffixes
  generate-required-files-file=true    write FILE from DIR instead of checking
  on-error-create-file=FILE            write the current listing here on mismatch

Examples:
  # Check a directory
  dirguard check-folder-for-files=src/gen required-files-file=gen-files.txt

  # Regenerate the expected list
  dirguard generate check-folder-for-files=src/gen required-files-file=gen-files.txt`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeCommand(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runReconcile(cmd, args, opts, false)
		},
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags that apply to all commands
	rootCmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v",
		"verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "",
		"mismatch report format: text|json|yaml")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "",
		"log encoding: json|console")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"config file (default .dirguard.yaml in the working or XDG config directory)")

	rootCmd.AddCommand(
		newGenerateCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

// initializeCommand loads the settings and applies flag overrides
func initializeCommand(cmd *cobra.Command, opts *Options) error {
	settings, err := config.LoadSettings(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("verbose") {
		settings.Verbose = opts.Verbose
	}
	if cmd.Flags().Changed("no-color") {
		settings.NoColor = opts.NoColor
	}
	if opts.Output != "" {
		settings.Output = strings.ToLower(opts.Output)
	}
	if opts.LogFormat != "" {
		settings.LogFormat = strings.ToLower(opts.LogFormat)
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	opts.Settings = settings
	return nil
}

// runReconcile runs one reconciliation and reports its failure, if any
func runReconcile(cmd *cobra.Command, args []string, opts *Options, generate bool) error {
	application := app.New(opts.Settings, app.Options{
		Fs:     opts.Fs,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})

	err := application.Run(args, generate)
	if err == nil {
		return nil
	}

	if reportErr := application.Report(err); reportErr != nil {
		return err
	}
	return &ReportedError{Err: err}
}
