package export

import (
	"fmt"
	"math"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
)

// UnreadableError reports a file that could not be stat'ed or read.
// Such files are left out of the export entirely.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable file %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// ReadFile stats entry and reads its text. Symlinks are followed, and only regular files are
// read. Invalid UTF-8 is replaced rather than rejected. Every failure is returned as an
// *UnreadableError.
func ReadFile(fs afero.Fs, entry FileEntry) (FileContent, error) {
	info, err := fs.Stat(entry.AbsPath)
	if err != nil {
		return FileContent{}, &UnreadableError{Path: entry.AbsPath, Err: err}
	}
	if !info.Mode().IsRegular() {
		return FileContent{}, &UnreadableError{Path: entry.AbsPath, Err: fmt.Errorf("not a regular file (mode %s)", info.Mode().Type())}
	}

	raw, err := afero.ReadFile(fs, entry.AbsPath)
	if err != nil {
		return FileContent{}, &UnreadableError{Path: entry.AbsPath, Err: err}
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return FileContent{}, &UnreadableError{Path: entry.AbsPath, Err: err}
	}
	text := string(decoded)

	return FileContent{
		Entry: entry,
		Stats: FileStats{
			SizeKB:   roundKB(info.Size()),
			Modified: info.ModTime(),
			Lines:    CountLines(text),
		},
		Language: DetectLanguage(entry.AbsPath),
		Text:     text,
	}, nil
}

// CountLines counts terminated lines plus a trailing unterminated one. Besides "\n", a bare
// "\r", "\r\n", the ASCII vertical tab, form feed and separator controls, NEL and the Unicode
// line and paragraph separators end a line.
func CountLines(text string) int {
	n := 0
	open := false
	for i, r := range text {
		switch r {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			n++
			open = false
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			n++
			open = false
		default:
			open = true
		}
	}
	if open {
		n++
	}
	return n
}

func roundKB(size int64) float64 {
	return math.Round(float64(size)/1024*100) / 100
}
