/*
Package app provides the application container for dirguard. It builds the
logger, lister, checker and report formatter from the runtime settings and
runs one reconciliation per call.

Usage:

	application := app.New(settings, app.Options{})
	if err := application.Run(os.Args[1:], false); err != nil {
	    application.Report(err)
	}
*/
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sonemaro/dirguard/internal/config"
	"github.com/sonemaro/dirguard/pkg/checker"
	"github.com/sonemaro/dirguard/pkg/lister"
	"github.com/sonemaro/dirguard/pkg/logger"
	"github.com/sonemaro/dirguard/pkg/output"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Options overrides the default I/O of the application
type Options struct {
	// Fs is the filesystem to reconcile against (defaults to the OS filesystem)
	Fs afero.Fs

	// Stdout receives structured (json, yaml) mismatch reports
	Stdout io.Writer

	// Stderr receives logs and text mismatch reports
	Stderr io.Writer
}

// App represents the main application container
type App struct {
	settings config.Settings
	log      logger.Logger

	fs        afero.Fs
	checker   *checker.Checker
	format    output.Format
	formatter output.Formatter

	stdout io.Writer
	stderr io.Writer
}

// New creates a new application instance
func New(settings config.Settings, opts Options) *App {
	a := &App{
		settings: settings,
		fs:       opts.Fs,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}
	if a.fs == nil {
		a.fs = afero.NewOsFs()
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}

	a.initLogger()
	a.initComponents()

	return a
}

// initLogger initializes the application logger
func (a *App) initLogger() {
	a.log = a.newLogger("")

	a.log.WithFields(logger.Fields{
		"verbosity": a.settings.Verbose,
		"output":    a.settings.Output,
	}).Debug("Logger initialized")
}

// newLogger builds a logger from the settings, tagged with component
func (a *App) newLogger(component string) logger.Logger {
	return logger.NewLogger(logger.Config{
		Verbosity: a.settings.Verbose,
		Encoding:  logger.Encoding(a.settings.LogFormat),
		Component: component,
		Output:    a.stderr,
	})
}

// initComponents initializes all application components
func (a *App) initComponents() {
	a.checker = checker.New(
		a.fs,
		lister.New(a.fs, a.newLogger("lister")),
		a.newLogger("checker"),
	)

	a.format = output.Format(a.settings.Output)
	if !output.IsValid(a.format) {
		a.log.WithFields(logger.Fields{
			"output": a.settings.Output,
		}).Warn("Unsupported report format, using text")
		a.format = output.FormatText
	}

	a.formatter = output.NewFormatter(output.Config{
		Format:      a.format,
		WithSummary: a.settings.Verbose > 0,
		WithColors:  !a.settings.NoColor && isTerminal(a.stderr),
	}, a.newLogger("output"))

	a.log.Debug("Components initialized successfully")
}

// Run parses key=value tokens and executes one reconciliation. When
// forceGenerate is set generate mode is used regardless of the tokens.
func (a *App) Run(tokens []string, forceGenerate bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	parsed := config.Parse(tokens)
	if forceGenerate {
		if err := parsed.Set(config.OptGenerate, "true"); err != nil {
			return err
		}
	}

	a.log.WithFields(logger.Fields{
		"options": parsed.String(),
	}).Debug("Parsed arguments")

	cfg, err := parsed.Resolve()
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Missing required input")
		return err
	}

	a.log.WithFields(logger.Fields{
		"config": cfg.String(),
	}).Debug("Starting reconciliation")

	return a.checker.Run(cfg)
}

// Report writes err to the configured outputs. Mismatches are rendered by
// the report formatter; any other error is written as a single line.
func (a *App) Report(err error) error {
	var mismatch *checker.MismatchError
	if !errors.As(err, &mismatch) {
		_, werr := fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return werr
	}

	rendered, ferr := a.formatter.Format(mismatch)
	if ferr != nil {
		return fmt.Errorf("failed to format report: %w", ferr)
	}

	w := a.stderr
	if a.format != output.FormatText {
		w = a.stdout
	}

	if _, werr := io.WriteString(w, rendered); werr != nil {
		a.log.WithFields(logger.Fields{
			"error": werr,
		}).Error("Failed to write report")
		return werr
	}
	return nil
}

// isTerminal checks if w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
