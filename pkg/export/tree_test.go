package export_test

import (
	"testing"

	"codechunk/pkg/export"
	"codechunk/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_RenderTree(t *testing.T) {
	fs := mkfs(t, map[string]string{
		"/proj/src/main.rs":               "fn main() {}\n",
		"/proj/src/lib/util.rs":           "",
		"/proj/Cargo.toml":                "",
		"/proj/README.md":                 "",
		"/proj/b.txt":                     "",
		"/proj/A.txt":                     "",
		"/proj/node_modules/pkg/index.js": "",
	}, "/proj/docs")

	lines, err := export.RenderTree(fs, "/proj", ignore.Default(), 5, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"📁 proj",
		"├── docs/",
		"├── src/",
		"│   ├── lib/",
		"│   │   └── util.rs",
		"│   └── main.rs",
		"├── A.txt",
		"├── b.txt",
		"└── Cargo.toml",
	}, lines)
}

func Test_RenderTreeMaxDepth(t *testing.T) {
	fs := mkfs(t, map[string]string{
		"/deep/a/b/c/file.txt": "x",
		"/deep/a/b/other.txt":  "y",
	})

	lines, err := export.RenderTree(fs, "/deep", ignore.New(nil, nil, nil), 1, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"📁 deep",
		"└── a/",
		"    └── b/",
		"        └── ... (max depth reached)",
	}, lines)
}

func Test_RenderTreeZeroDepth(t *testing.T) {
	fs := mkfs(t, map[string]string{
		"/r/top.txt":  "",
		"/r/d/in.txt": "",
	})

	lines, err := export.RenderTree(fs, "/r", ignore.New(nil, nil, nil), 0, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"📁 r",
		"├── d/",
		"│   └── ... (max depth reached)",
		"└── top.txt",
	}, lines)
}

func Test_RenderTreeMissingRoot(t *testing.T) {
	fs := mkfs(t, nil)
	_, err := export.RenderTree(fs, "/missing", ignore.Default(), 5, zap.NewNop())
	assert.Error(t, err)
}
