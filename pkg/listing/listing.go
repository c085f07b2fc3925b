/*
Package listing renders file name collections into the canonical listing
format and moves that format between memory and disk.

The canonical listing is one name per line, each line terminated by "\n",
lines ordered case-insensitively. The same format is used for the expected
list and for the mismatch snapshot so the two can be compared byte for byte.

	text := listing.Canonical([]string{"b.txt", "A.txt"})
	// "A.txt\nb.txt\n"
*/
package listing

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const lineTerminator = "\n"

// Sorted returns a copy of names ordered case-insensitively.
// Names that compare equal keep their relative order.
func Sorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareFold(out[i]+lineTerminator, out[j]+lineTerminator) < 0
	})
	return out
}

// Canonical renders names as the canonical listing text.
func Canonical(names []string) string {
	var b strings.Builder
	for _, name := range Sorted(names) {
		b.WriteString(name)
		b.WriteString(lineTerminator)
	}
	return b.String()
}

// Equal reports whether two collections have byte-identical canonical listings.
func Equal(a, b []string) bool {
	return Canonical(a) == Canonical(b)
}

// CompareFold compares a and b rune by rune ignoring case. A pair of runes
// is equal when they match directly, after upper-casing or after
// lower-casing. The result is negative, zero or positive.
func CompareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		a, b = a[na:], b[nb:]

		if ra == rb {
			continue
		}
		ua, ub := unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ua == ub {
			continue
		}
		la, lb := unicode.ToLower(ua), unicode.ToLower(ub)
		if la != lb {
			return int(la) - int(lb)
		}
	}
	return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
}

// ReadLines reads path and returns its lines without terminators.
// Both "\n" and "\r\n" endings are accepted; a missing final terminator
// does not produce an extra empty line.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

// Write replaces the content of path with content, creating the file if
// it does not exist.
func Write(fs afero.Fs, path string, content string) error {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
