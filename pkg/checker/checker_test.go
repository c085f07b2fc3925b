package checker

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sonemaro/dirguard/internal/config"
	"github.com/sonemaro/dirguard/pkg/diff"
	"github.com/sonemaro/dirguard/pkg/lister"
	"github.com/sonemaro/dirguard/pkg/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

const (
	workDir      = "/work/generated"
	expectedFile = "/work/required-files.txt"
	snapshotFile = "/work/actual-files.txt"
)

func setup(t *testing.T, files []string, expected string) (afero.Fs, *Checker, *mockLogger) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(workDir, 0755))
	for _, name := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(workDir, name), []byte("x"), 0644))
	}
	if expected != "" {
		require.NoError(t, afero.WriteFile(fs, expectedFile, []byte(expected), 0644))
	}

	log := &mockLogger{}
	return fs, New(fs, lister.New(fs, log), log), log
}

func checkConfig() config.Config {
	return config.Config{
		Dir:          workDir,
		ExpectedFile: expectedFile,
		SnapshotFile: config.Optional[string]{Value: snapshotFile, Set: true},
	}
}

func TestCheckMatches(t *testing.T) {
	fs, c, log := setup(t, []string{"a", "b"}, "b\na\n")

	require.NoError(t, c.Run(checkConfig()))

	exists, err := afero.Exists(fs, snapshotFile)
	require.NoError(t, err)
	assert.False(t, exists, "no snapshot is written on success")
	assert.Contains(t, log.logs, "INFO: OK")
}

func TestCheckDirectoryHasSurplus(t *testing.T) {
	fs, c, _ := setup(t, []string{"a.txt", "b.txt", "c.txt"}, "a.txt\nb.txt\n")

	err := c.Run(checkConfig())

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, diff.KindSurplus, mismatch.Report.Kind)
	assert.Equal(t, workDir+" contains:\nc.txt\n", mismatch.Report.String())
	assert.Equal(t,
		"The list of files is not equal\n"+
			workDir+" contains:\nc.txt\n"+
			"Compare: "+expectedFile+" with "+snapshotFile+"\n",
		err.Error())

	snapshot, readErr := afero.ReadFile(fs, snapshotFile)
	require.NoError(t, readErr)
	assert.Equal(t, "a.txt\nb.txt\nc.txt\n", string(snapshot))
}

func TestCheckExpectedListHasSurplus(t *testing.T) {
	_, c, _ := setup(t, []string{"a.txt"}, "a.txt\nb.txt\n")

	err := c.Run(checkConfig())

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, expectedFile+" contains:\nb.txt\n", mismatch.Report.String())
}

func TestCheckWithoutSnapshot(t *testing.T) {
	fs, c, _ := setup(t, []string{"a", "c"}, "a\nb\n")
	cfg := checkConfig()
	cfg.SnapshotFile = config.Optional[string]{}

	err := c.Run(cfg)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, diff.KindBoth, mismatch.Report.Kind)
	assert.Empty(t, mismatch.Hint())
	assert.NotContains(t, err.Error(), "Compare:")

	exists, _ := afero.Exists(fs, snapshotFile)
	assert.False(t, exists)
}

func TestCheckSnapshotFailureKeepsMismatch(t *testing.T) {
	_, c, log := setup(t, []string{"a", "b"}, "a\n")
	cfg := checkConfig()
	cfg.SnapshotFile = config.Optional[string]{Value: "/no/such/dir/actual.txt", Set: true}

	base := c.fs
	c.fs = afero.NewReadOnlyFs(base)

	err := c.Run(cfg)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Error(t, mismatch.SnapshotErr)
	assert.Contains(t, log.logs, "WARN: Failed to write listing snapshot")
	assert.Contains(t, mismatch.Hint(), "(snapshot not written: ")
	assert.Contains(t, mismatch.Error(), "(snapshot not written: ")
}

func TestCheckSuffixFilter(t *testing.T) {
	_, c, _ := setup(t, []string{"a.txt", "b.jar"}, "a.txt\n")
	cfg := checkConfig()
	cfg.Suffixes = []string{".txt"}

	assert.NoError(t, c.Run(cfg))
}

func TestCheckIgnoresCaseInOrdering(t *testing.T) {
	_, c, _ := setup(t, []string{"B.txt", "a.txt"}, "a.txt\nB.txt\n")

	assert.NoError(t, c.Run(checkConfig()))
}

func TestCheckCaseOnlyDifferenceIsMismatch(t *testing.T) {
	_, c, _ := setup(t, []string{"A.txt"}, "a.txt\n")

	err := c.Run(checkConfig())

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, diff.KindBoth, mismatch.Report.Kind)
}

func TestGenerate(t *testing.T) {
	fs, c, _ := setup(t, []string{"c.txt", "A.txt", "b.txt"}, "stale\nlonger stale content\n")
	cfg := checkConfig()
	cfg.Generate = true

	require.NoError(t, c.Run(cfg))

	content, err := afero.ReadFile(fs, expectedFile)
	require.NoError(t, err)
	assert.Equal(t, "A.txt\nb.txt\nc.txt\n", string(content))
}

func TestGenerateThenCheck(t *testing.T) {
	_, c, _ := setup(t, []string{"Zeta.java", "alpha.java", "beta.kt", "notes.md"}, "")
	cfg := checkConfig()
	cfg.Suffixes = []string{".java", ".kt"}

	cfg.Generate = true
	require.NoError(t, c.Run(cfg))

	cfg.Generate = false
	assert.NoError(t, c.Run(cfg))
}

func TestGenerateEmptyDirectory(t *testing.T) {
	fs, c, _ := setup(t, nil, "")
	cfg := checkConfig()

	require.NoError(t, c.Generate(cfg))

	content, err := afero.ReadFile(fs, expectedFile)
	require.NoError(t, err)
	assert.Empty(t, content)

	assert.NoError(t, c.Check(cfg))
}

func TestPreconditions(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(afero.Fs, *config.Config)
		wantPath string
	}{
		{
			name: "missing directory",
			mutate: func(_ afero.Fs, cfg *config.Config) {
				cfg.Dir = "/work/missing"
			},
			wantPath: "/work/missing",
		},
		{
			name: "directory is a file",
			mutate: func(_ afero.Fs, cfg *config.Config) {
				cfg.Dir = expectedFile
			},
			wantPath: expectedFile,
		},
		{
			name: "missing expected list",
			mutate: func(_ afero.Fs, cfg *config.Config) {
				cfg.ExpectedFile = "/work/absent.txt"
			},
			wantPath: "/work/absent.txt",
		},
		{
			name: "expected list is a directory",
			mutate: func(fs afero.Fs, cfg *config.Config) {
				cfg.ExpectedFile = workDir
			},
			wantPath: workDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, c, _ := setup(t, []string{"a"}, "a\n")
			cfg := checkConfig()
			tt.mutate(fs, &cfg)

			err := c.Run(cfg)

			var pre *PreconditionError
			require.True(t, errors.As(err, &pre), "got %v", err)
			assert.Equal(t, tt.wantPath, pre.Path)

			exists, _ := afero.Exists(fs, snapshotFile)
			assert.False(t, exists)
		})
	}
}

func TestGenerateDoesNotRequireExpectedFile(t *testing.T) {
	fs, c, _ := setup(t, []string{"a"}, "")
	cfg := checkConfig()
	cfg.Generate = true
	cfg.ExpectedFile = "/work/new-list.txt"

	require.NoError(t, c.Run(cfg))

	content, err := afero.ReadFile(fs, "/work/new-list.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(content))
}
