package output

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/sonemaro/dirguard/pkg/checker"
	"github.com/sonemaro/dirguard/pkg/diff"
	"github.com/sonemaro/dirguard/pkg/listing"
)

const headline = "The list of files is not equal"

// formatText renders the same text as the mismatch error, optionally
// colored and followed by a summary line.
func (f *formatter) formatText(m *checker.MismatchError) (string, error) {
	f.log.Debug("Formatting text output")

	headlineColor := f.newColor(color.FgRed, color.Bold)
	labelColor := f.newColor(color.FgYellow)
	hintColor := f.newColor(color.FgCyan)

	var b strings.Builder
	b.WriteString(headlineColor.Sprint(headline))
	b.WriteString("\n")

	for _, s := range m.Report.Sections {
		b.WriteString(labelColor.Sprint(strings.TrimSuffix(diff.Header(s.Label), "\n")))
		b.WriteString("\n")
		b.WriteString(listing.Canonical(s.Files))
	}

	if hint := m.Hint(); hint != "" {
		b.WriteString(hintColor.Sprint(hint))
		b.WriteString("\n")
	}

	if f.config.WithSummary {
		f.log.Debug("Adding summary to text output")
		b.WriteString(summary(m))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func (f *formatter) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if f.config.WithColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func summary(m *checker.MismatchError) string {
	switch m.Report.Kind {
	case diff.KindSurplus:
		s := m.Report.Sections[0]
		return fmt.Sprintf("Summary: %s only in %s", english.Plural(len(s.Files), "file", ""), s.Label)
	case diff.KindBoth:
		parts := make([]string, 0, len(m.Report.Sections))
		for _, s := range m.Report.Sections {
			parts = append(parts, fmt.Sprintf("%s in %s", english.Plural(len(s.Files), "file", ""), s.Label))
		}
		return "Summary: listings diverge, " + strings.Join(parts, " vs ")
	default:
		return "Summary: listings differ in duplicates only"
	}
}
