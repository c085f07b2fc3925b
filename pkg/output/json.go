package output

import (
	"encoding/json"
	"time"

	"github.com/sonemaro/dirguard/pkg/checker"
	"github.com/sonemaro/dirguard/pkg/diff"
	"github.com/sonemaro/dirguard/pkg/logger"
)

// reportOutput is the structured form shared by the JSON and YAML formats
type reportOutput struct {
	Status        string         `json:"status" yaml:"status"`
	Kind          diff.Kind      `json:"kind" yaml:"kind"`
	ExpectedFile  string         `json:"expectedFile" yaml:"expectedFile"`
	Dir           string         `json:"dir" yaml:"dir"`
	SnapshotFile  string         `json:"snapshotFile,omitempty" yaml:"snapshotFile,omitempty"`
	SnapshotError string         `json:"snapshotError,omitempty" yaml:"snapshotError,omitempty"`
	Sections      []diff.Section `json:"sections" yaml:"sections"`
	Summary       string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Generated     time.Time      `json:"generated" yaml:"generated"`
}

func (f *formatter) buildReport(m *checker.MismatchError) *reportOutput {
	out := &reportOutput{
		Status:       "mismatch",
		Kind:         m.Report.Kind,
		ExpectedFile: m.ExpectedFile,
		Dir:          m.Dir,
		SnapshotFile: m.SnapshotFile,
		Sections:     m.Report.Sections,
		Generated:    time.Now(),
	}
	if out.Sections == nil {
		out.Sections = []diff.Section{}
	}
	if m.SnapshotErr != nil {
		out.SnapshotError = m.SnapshotErr.Error()
	}
	if f.config.WithSummary {
		out.Summary = summary(m)
	}
	return out
}

func (f *formatter) formatJSON(m *checker.MismatchError) (string, error) {
	f.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(f.buildReport(m), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
