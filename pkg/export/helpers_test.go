package export_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var testModTime = time.Date(2024, 3, 9, 14, 30, 0, 0, time.Local)

// mkfs creates a memory filesystem holding files (path -> content) and empty dirs.
func mkfs(t *testing.T, files map[string]string, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
		require.NoError(t, fs.Chtimes(path, testModTime, testModTime))
	}
	return fs
}
