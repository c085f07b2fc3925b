/*
Package diff describes where two file name collections disagree.

The report is asymmetric: when one side is a strict, larger superset of the
other only its surplus names are reported under that side's label. When
either side is empty, or neither contains the other, both sides are
reported in full. Identical collections produce an empty report.

	text := diff.Diff(expected, actual, "/src/required-files.txt", "/src/generated")
*/
package diff

import (
	"strings"

	"github.com/sonemaro/dirguard/pkg/listing"
)

// Kind classifies the outcome of a comparison.
type Kind string

const (
	// KindNone means no difference was found.
	KindNone Kind = "none"

	// KindBoth means both sides are reported in full.
	KindBoth Kind = "both"

	// KindSurplus means one side holds names the other lacks.
	KindSurplus Kind = "surplus"
)

// Section is the list of names reported for one side of a comparison.
type Section struct {
	Label string   `json:"label" yaml:"label"`
	Files []string `json:"files" yaml:"files"`
}

// Report is the structured result of a comparison.
type Report struct {
	Kind     Kind      `json:"kind" yaml:"kind"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Header returns the line that introduces the names found at label.
func Header(label string) string {
	return label + " contains:\n"
}

// String renders the report as text: every section is its header followed
// by its canonical listing.
func (r Report) String() string {
	var b strings.Builder
	for _, s := range r.Sections {
		b.WriteString(Header(s.Label))
		b.WriteString(listing.Canonical(s.Files))
	}
	return b.String()
}

// Empty reports whether no difference was found.
func (r Report) Empty() bool {
	return r.Kind == KindNone
}

// Diff compares two collections and returns the textual report.
func Diff(a, b []string, aLabel, bLabel string) string {
	return Compare(a, b, aLabel, bLabel).String()
}

// Compare compares two collections and returns the structured report.
// The inputs are never modified.
func Compare(a, b []string, aLabel, bLabel string) Report {
	left := clone(a)
	right := clone(b)

	if len(left) == 0 || len(right) == 0 || (!containsAll(left, right) && !containsAll(right, left)) {
		return Report{
			Kind: KindBoth,
			Sections: []Section{
				{Label: aLabel, Files: listing.Sorted(left)},
				{Label: bLabel, Files: listing.Sorted(right)},
			},
		}
	}

	if surplus, ok := surplusOf(left, right); ok {
		return Report{
			Kind:     KindSurplus,
			Sections: []Section{{Label: aLabel, Files: listing.Sorted(surplus)}},
		}
	}

	if surplus, ok := surplusOf(right, left); ok {
		return Report{
			Kind:     KindSurplus,
			Sections: []Section{{Label: bLabel, Files: listing.Sorted(surplus)}},
		}
	}

	return Report{Kind: KindNone}
}

// surplusOf removes every occurrence of other's names from larger. It only
// applies when larger has more entries than other and at least one entry was
// removed.
func surplusOf(larger, other []string) ([]string, bool) {
	if len(larger) <= len(other) {
		return nil, false
	}

	drop := toSet(other)
	kept := make([]string, 0, len(larger))
	for _, name := range larger {
		if _, ok := drop[name]; !ok {
			kept = append(kept, name)
		}
	}

	if len(kept) == len(larger) {
		return nil, false
	}
	return kept, true
}

func containsAll(set, subset []string) bool {
	have := toSet(set)
	for _, name := range subset {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func clone(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
