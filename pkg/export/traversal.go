package export

import (
	"os"
	"path/filepath"

	"codechunk/pkg/ignore"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// CollectFiles walks root and returns every regular file not excluded by set, in lexical walk
// order. Ignored directories are not descended. Symlinks to files are kept, symlinks to
// directories are not followed, and other special files are left out. Entries that cannot be
// accessed are logged and skipped.
func CollectFiles(fs afero.Fs, root string, set *ignore.Set, logger *zap.Logger) ([]FileEntry, error) {
	var files []FileEntry
	logger.Debug("Starting file collection", zap.String("root", root))

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)
		if relPath == "." {
			return nil
		}

		if info.IsDir() {
			if set.Excludes(info.Name()) {
				logger.Debug("Skipping ignored directory", zap.String("directory", relPath))
				return filepath.SkipDir
			}
			return nil
		}

		if set.ExcludesPath(relPath) {
			logger.Debug("Skipping ignored file", zap.String("file", relPath))
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, statErr := fs.Stat(path)
			if statErr != nil {
				logger.Warn("Skipping broken symlink", zap.String("file", relPath), zap.Error(statErr))
				return nil
			}
			if target.IsDir() {
				logger.Debug("Skipping symlinked directory", zap.String("directory", relPath))
				return nil
			}
			info = target
		}
		if !info.Mode().IsRegular() {
			logger.Debug("Skipping special file", zap.String("file", relPath), zap.Stringer("mode", info.Mode().Type()))
			return nil
		}

		files = append(files, FileEntry{AbsPath: path, RelPath: relPath})
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return files, err
	}

	logger.Debug("Completed file collection", zap.Int("files", len(files)))
	return files, nil
}
