package export_test

import (
	"testing"

	"codechunk/pkg/export"
	"codechunk/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func relPaths(entries []export.FileEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.RelPath)
	}
	return paths
}

func Test_CollectFiles(t *testing.T) {
	fs := mkfs(t, map[string]string{
		"/proj/src/main.rs":                   "",
		"/proj/src/lib/util.rs":               "",
		"/proj/src/lib/node_modules/dep/x.js": "",
		"/proj/Cargo.toml":                    "",
		"/proj/README.md":                     "",
		"/proj/b.txt":                         "",
		"/proj/A.txt":                         "",
		"/proj/node_modules/pkg/index.js":     "",
		"/proj/.git/HEAD":                     "",
	}, "/proj/empty")

	entries, err := export.CollectFiles(fs, "/proj", ignore.Default(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"A.txt",
		"Cargo.toml",
		"b.txt",
		"src/lib/util.rs",
		"src/main.rs",
	}, relPaths(entries))
	assert.Equal(t, "/proj/src/main.rs", entries[4].AbsPath)
}

func Test_CollectFilesCustomSet(t *testing.T) {
	fs := mkfs(t, map[string]string{
		"/proj/keep/a.go":        "",
		"/proj/skip/a.go":        "",
		"/proj/deep/x/skip/b.go": "",
		"/proj/generated.go":     "",
	})
	set := ignore.New([]string{"skip"}, []string{"generated.go"}, nil)

	entries, err := export.CollectFiles(fs, "/proj", set, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"keep/a.go"}, relPaths(entries))
}
