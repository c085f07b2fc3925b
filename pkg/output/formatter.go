/*
Package output renders reconciliation mismatch reports as colored text,
JSON or YAML.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatText,
		WithColors: true,
	}, log)

	report, err := formatter.Format(mismatch)
*/
package output

import (
	"fmt"

	"github.com/sonemaro/dirguard/pkg/checker"
	"github.com/sonemaro/dirguard/pkg/logger"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config holds formatter configuration
type Config struct {
	Format      Format
	WithSummary bool
	WithColors  bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(*checker.MismatchError) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the mismatch according to the configured format
func (f *formatter) Format(m *checker.MismatchError) (string, error) {
	if m == nil {
		msg := "nil mismatch provided for formatting"
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}

	f.log.WithFields(logger.Fields{
		"format":      f.config.Format,
		"withSummary": f.config.WithSummary,
		"withColors":  f.config.WithColors,
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatText, "":
		return f.formatText(m)
	case FormatJSON:
		return f.formatJSON(m)
	case FormatYAML:
		return f.formatYAML(m)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}
}

// IsValid reports whether format is supported.
func IsValid(format Format) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}
