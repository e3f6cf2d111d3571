package ignore

import (
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// DefaultDirs lists the directory names skipped when no configuration overrides them.
var DefaultDirs = []string{
	".anchor",
	".git",
	"node_modules",
	"target",
	"__pycache__",
	".idea",
	".vscode",
	"venv",
	"dist",
	"build",
	"test-ledger",
	"public",
	"bank",
	"config",
	"middleware",
	"tests",
	"utils",
}

// DefaultFiles lists the file names skipped when no configuration overrides them.
var DefaultFiles = []string{
	".DS_Store",
	"Thumbs.db",
	".gitignore",
	".prettierignore",
	"cargo.bak",
	"Cargo.lock",
	"yarn.lock",
	"README.md",
	"Dockerfile",
	"parse.py",
	"package-lock.json",
	"go.sum",
	"go.mod",
	"swagger.yaml",
	"internal.md",
	"setup.sh",
	"start-validator.sh",
	"CONTRIBUTING.md",
	"DEPLOYMENT.md",
	"LICENSE",
	"pnpm-lock.yaml",
	"SETUP.md",
	"update.txt",
	"banks.json",
}

// Set holds the directory and file names excluded from traversal.
// A Set is immutable once built.
type Set struct {
	dirs  map[string]struct{} // Ignored directory names.
	files map[string]struct{} // Ignored file names.
}

// New builds a Set from the given name lists. Blank names are dropped.
func New(dirs, files []string, logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Set{
		dirs:  toSet(dirs),
		files: toSet(files),
	}
	logger.Debug("Built ignore set",
		zap.Int("dirNames", len(s.dirs)),
		zap.Int("fileNames", len(s.files)))
	return s
}

// Default returns a Set built from DefaultDirs and DefaultFiles.
func Default() *Set {
	return New(DefaultDirs, DefaultFiles, nil)
}

// Excludes reports whether an entry with the given base name must be skipped.
// The name is checked against both sets, matching by exact equality.
func (s *Set) Excludes(name string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.dirs[name]; ok {
		return true
	}
	_, ok := s.files[name]
	return ok
}

// ExcludesPath reports whether any segment of a root-relative path is excluded.
func (s *Set) ExcludesPath(relPath string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(relPath), "/") {
		if segment == "" || segment == "." {
			continue
		}
		if s.Excludes(segment) {
			return true
		}
	}
	return false
}

// Dirs returns the ignored directory names, sorted.
func (s *Set) Dirs() []string {
	return sortedKeys(s.dirs)
}

// Files returns the ignored file names, sorted.
func (s *Set) Files() []string {
	return sortedKeys(s.files)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
