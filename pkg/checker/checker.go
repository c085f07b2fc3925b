/*
Package checker reconciles a directory with its expected file list.

A Checker runs in one of two modes, selected by config.Config.Generate:

  - generate: the canonical listing of the directory replaces the content of
    the expected-list file.
  - check: the canonical listing is compared with the canonical form of the
    expected-list file. On mismatch the listing is written to the snapshot
    file (when configured) and a *MismatchError is returned.

Usage:

	c := checker.New(afero.NewOsFs(), lister.New(fs, log), log)
	if err := c.Run(cfg); err != nil {
	    var mismatch *checker.MismatchError
	    if errors.As(err, &mismatch) {
	        // report mismatch.Report
	    }
	}
*/
package checker

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize/english"
	"github.com/sonemaro/dirguard/internal/config"
	"github.com/sonemaro/dirguard/pkg/diff"
	"github.com/sonemaro/dirguard/pkg/lister"
	"github.com/sonemaro/dirguard/pkg/listing"
	"github.com/sonemaro/dirguard/pkg/logger"
	"github.com/spf13/afero"
)

// Checker runs reconciliations against a filesystem.
type Checker struct {
	fs     afero.Fs
	lister lister.Lister
	log    logger.Logger
}

// New creates a Checker.
func New(fs afero.Fs, l lister.Lister, log logger.Logger) *Checker {
	return &Checker{
		fs:     fs,
		lister: l,
		log:    log,
	}
}

// Run validates the preconditions of the configured mode and executes it.
func (c *Checker) Run(cfg config.Config) error {
	if cfg.Generate {
		return c.Generate(cfg)
	}
	return c.Check(cfg)
}

// Generate writes the canonical directory listing to the expected-list file.
func (c *Checker) Generate(cfg config.Config) error {
	if err := c.checkPreconditions(cfg, true); err != nil {
		return err
	}

	names, err := c.lister.List(cfg.Dir, cfg.Suffixes)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cfg.Dir, err)
	}

	if err := listing.Write(c.fs, cfg.ExpectedFile, listing.Canonical(names)); err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  cfg.ExpectedFile,
		}).Error("Failed to write expected list")
		return err
	}

	c.log.WithFields(logger.Fields{
		"dir":      cfg.Dir,
		"expected": cfg.ExpectedFile,
		"files":    len(names),
	}).Info(fmt.Sprintf("Generated expected list with %s", english.Plural(len(names), "file", "")))

	return nil
}

// Check compares the canonical directory listing with the expected list.
func (c *Checker) Check(cfg config.Config) error {
	if err := c.checkPreconditions(cfg, false); err != nil {
		return err
	}

	c.log.WithFields(logger.Fields{
		"suffixes": cfg.Suffixes,
		"dir":      absPath(cfg.Dir),
		"expected": absPath(cfg.ExpectedFile),
	}).Info("Comparing directory listing with expected list")

	actual, err := c.lister.List(cfg.Dir, cfg.Suffixes)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cfg.Dir, err)
	}

	expected, err := listing.ReadLines(c.fs, cfg.ExpectedFile)
	if err != nil {
		return err
	}

	if listing.Equal(actual, expected) {
		c.log.WithFields(logger.Fields{
			"dir":   cfg.Dir,
			"files": len(actual),
		}).Info("OK")
		return nil
	}

	mismatch := &MismatchError{
		Report:       diff.Compare(expected, actual, absPath(cfg.ExpectedFile), absPath(cfg.Dir)),
		ExpectedFile: absPath(cfg.ExpectedFile),
		Dir:          absPath(cfg.Dir),
	}

	if path, ok := cfg.SnapshotFile.Get(); ok {
		mismatch.SnapshotFile = absPath(path)
		if err := listing.Write(c.fs, path, listing.Canonical(actual)); err != nil {
			mismatch.SnapshotErr = err
			c.log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Warn("Failed to write listing snapshot")
		}
	}

	c.log.WithFields(logger.Fields{
		"dir":      mismatch.Dir,
		"expected": mismatch.ExpectedFile,
		"kind":     mismatch.Report.Kind,
		"actual":   english.Plural(len(actual), "file", ""),
		"listed":   english.Plural(len(expected), "file", ""),
	}).Error("Directory listing does not match expected list")

	return mismatch
}

// checkPreconditions requires Dir to be a directory and, outside generate
// mode, ExpectedFile to be a regular file.
func (c *Checker) checkPreconditions(cfg config.Config, generate bool) error {
	info, err := c.fs.Stat(cfg.Dir)
	if err != nil {
		return &PreconditionError{Path: cfg.Dir, Reason: "directory does not exist"}
	}
	if !info.IsDir() {
		return &PreconditionError{Path: cfg.Dir, Reason: "not a directory"}
	}

	if generate {
		return nil
	}

	info, err = c.fs.Stat(cfg.ExpectedFile)
	if err != nil {
		return &PreconditionError{Path: cfg.ExpectedFile, Reason: "expected-list file does not exist"}
	}
	if !info.Mode().IsRegular() {
		return &PreconditionError{Path: cfg.ExpectedFile, Reason: "expected-list file is not a regular file"}
	}

	return nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
