package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"codechunk/pkg/ignore"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	branchMid   = "├── "
	branchLast  = "└── "
	indentMid   = "│   "
	indentLast  = "    "
	depthMarker = "... (max depth reached)"
)

type treeEntry struct {
	name string
	dir  bool
}

// RenderTree returns the lines of a tree diagram for root, starting with a line naming the root.
// Levels deeper than maxDepth are replaced by a single placeholder line.
func RenderTree(fs afero.Fs, root string, set *ignore.Set, maxDepth int, logger *zap.Logger) ([]string, error) {
	lines := []string{"📁 " + filepath.Base(root)}
	sub, err := renderLevel(fs, root, set, "", 0, maxDepth, logger)
	if err != nil {
		return nil, err
	}
	return append(lines, sub...), nil
}

// renderLevel renders the entries of directory at the given depth below the root.
func renderLevel(fs afero.Fs, directory string, set *ignore.Set, prefix string, depth, maxDepth int, logger *zap.Logger) ([]string, error) {
	if depth > maxDepth {
		return []string{prefix + branchLast + depthMarker}, nil
	}

	infos, err := afero.ReadDir(fs, directory)
	if err != nil {
		logger.Error("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	var entries []treeEntry
	for _, info := range infos {
		if set.Excludes(info.Name()) {
			logger.Debug("Skipping ignored entry in tree", zap.String("name", info.Name()))
			continue
		}
		entries = append(entries, treeEntry{name: info.Name(), dir: isDirEntry(fs, directory, info)})
	}

	// Directories first, then files, each case-insensitively by name.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].dir != entries[j].dir {
			return entries[i].dir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	var output []string
	for i, entry := range entries {
		connector, extension := branchMid, indentMid
		if i == len(entries)-1 {
			connector, extension = branchLast, indentLast
		}

		if !entry.dir {
			output = append(output, prefix+connector+entry.name)
			continue
		}

		output = append(output, prefix+connector+entry.name+"/")
		subtree, err := renderLevel(fs, filepath.Join(directory, entry.name), set, prefix+extension, depth+1, maxDepth, logger)
		if err != nil {
			return nil, err
		}
		output = append(output, subtree...)
	}
	return output, nil
}

// isDirEntry reports whether info is a directory, following a symlink to its target.
// A broken symlink is listed as a file.
func isDirEntry(fs afero.Fs, directory string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := fs.Stat(filepath.Join(directory, info.Name()))
	if err != nil {
		return false
	}
	return target.IsDir()
}
