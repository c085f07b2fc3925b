package checker

import (
	"fmt"
	"strings"

	"github.com/sonemaro/dirguard/pkg/diff"
)

// PreconditionError is returned when a configured path is unusable for the
// selected mode. Nothing has been written when it is returned.
type PreconditionError struct {
	Path   string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Path, e.Reason)
}

// MismatchError is returned by check mode when the directory listing and
// the expected list differ.
type MismatchError struct {
	// Report describes where the listings disagree
	Report diff.Report

	// ExpectedFile is the absolute path of the expected-list file
	ExpectedFile string

	// Dir is the absolute path of the checked directory
	Dir string

	// SnapshotFile is the absolute path the current listing was written to,
	// empty when no snapshot was requested
	SnapshotFile string

	// SnapshotErr is set when writing the snapshot failed
	SnapshotErr error
}

const mismatchHeadline = "The list of files is not equal\n"

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString(mismatchHeadline)
	b.WriteString(e.Report.String())
	if hint := e.Hint(); hint != "" {
		b.WriteString(hint)
		b.WriteString("\n")
	}
	return b.String()
}

// Hint points at the two files to compare when a snapshot was requested,
// noting when the snapshot could not be written.
func (e *MismatchError) Hint() string {
	if e.SnapshotFile == "" {
		return ""
	}
	hint := fmt.Sprintf("Compare: %s with %s", e.ExpectedFile, e.SnapshotFile)
	if e.SnapshotErr != nil {
		hint += fmt.Sprintf(" (snapshot not written: %v)", e.SnapshotErr)
	}
	return hint
}
