/*
Package lister lists the file names found directly inside a directory,
optionally keeping only names that end with one of a set of suffixes.

The lister never descends into subdirectories. It works on any afero.Fs,
which keeps tests on an in-memory filesystem.

Basic usage:

	l := lister.New(afero.NewOsFs(), log)
	names, err := l.List("/src/generated", []string{".java"})
*/
package lister

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sonemaro/dirguard/pkg/logger"
	"github.com/spf13/afero"
)

// Lister defines the interface for directory listing operations
type Lister interface {
	// List returns the base names of the immediate children of dir whose
	// name ends with one of suffixes. An empty suffix list keeps every name.
	List(dir string, suffixes []string) ([]string, error)
}

type lister struct {
	fs  afero.Fs
	log logger.Logger
}

// New creates a Lister backed by fs.
func New(fs afero.Fs, log logger.Logger) Lister {
	return &lister{
		fs:  fs,
		log: log,
	}
}

// List reads dir once and filters its entries by suffix.
func (l *lister) List(dir string, suffixes []string) ([]string, error) {
	l.log.WithFields(logger.Fields{
		"dir":      dir,
		"suffixes": suffixes,
	}).Debug("Listing directory")

	info, err := l.fs.Stat(dir)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, &NotDirectoryError{Path: dir, Err: err}
		case errors.Is(err, os.ErrPermission):
			return nil, &PermissionError{Path: dir, Err: err}
		}
		return nil, fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: dir}
	}

	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		l.log.WithFields(logger.Fields{
			"error": err,
			"dir":   dir,
		}).Error("Failed to read directory")

		if errors.Is(err, os.ErrPermission) {
			return nil, &PermissionError{Path: dir, Err: err}
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !MatchesSuffix(name, suffixes) {
			l.log.WithFields(logger.Fields{
				"name": name,
			}).Trace("Skipping entry without matching suffix")
			continue
		}
		names = append(names, name)
	}

	l.log.WithFields(logger.Fields{
		"dir":     dir,
		"entries": len(entries),
		"matched": len(names),
	}).Debug("Directory listed")

	return names, nil
}

// MatchesSuffix reports whether name ends with at least one of suffixes.
// Empty suffixes are ignored; when none remain every name matches.
func MatchesSuffix(name string, suffixes []string) bool {
	filtered := false
	for _, suffix := range suffixes {
		if suffix == "" {
			continue
		}
		filtered = true
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return !filtered
}
