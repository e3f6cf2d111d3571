package export

import (
	"mime"
	"path/filepath"
	"strings"
)

// languageByExtension maps lowercase extensions to code fence tags.
var languageByExtension = map[string]string{
	".rs":         "rust",
	".go":         "go",
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".java":       "java",
	".c":          "c",
	".cpp":        "cpp",
	".cs":         "csharp",
	".rb":         "ruby",
	".php":        "php",
	".html":       "html",
	".css":        "css",
	".scss":       "scss",
	".toml":       "toml",
	".json":       "json",
	".md":         "markdown",
	".txt":        "plaintext",
	".sh":         "shell",
	".yml":        "yaml",
	".yaml":       "yaml",
	".sql":        "sql",
	".xml":        "xml",
	".dockerfile": "dockerfile",
	".ipynb":      "json",
}

const fallbackLanguage = "plaintext"

// DetectLanguage returns the code fence tag for path. It never fails.
func DetectLanguage(path string) string {
	ext := strings.ToLower(Extension(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	if ext == "" {
		return fallbackLanguage
	}

	mediaType := mime.TypeByExtension(ext)
	if mediaType == "" {
		return fallbackLanguage
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	subtype := strings.TrimSpace(mediaType[strings.LastIndexByte(mediaType, '/')+1:])
	if subtype == "" {
		return fallbackLanguage
	}
	return subtype
}

// Extension returns the final dotted suffix of the base name of path, or "" when the name is a
// dotfile like ".env" or ends in a bare dot.
func Extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return ""
	}
	return ext
}
