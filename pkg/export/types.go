// Package export renders a directory tree and its file contents into size-bounded
// Markdown chunks.
package export

import (
	"time"
	"unicode/utf8"
)

// FileEntry is a file retained by traversal.
type FileEntry struct {
	AbsPath string // Absolute path on the source filesystem.
	RelPath string // Slash-separated path relative to the traversal root.
}

// FileStats describes a file as it was on disk when it was read.
type FileStats struct {
	SizeKB   float64   // Size in kilobytes, rounded to two decimals.
	Modified time.Time // Last modification time.
	Lines    int       // Number of lines in the decoded content.
}

// FileContent is a readable file with its stats and decoded text.
type FileContent struct {
	Entry    FileEntry
	Stats    FileStats
	Language string
	Text     string
}

// BlockKind identifies which section of the document a block belongs to.
type BlockKind int

const (
	HeaderBlock BlockKind = iota
	FileBlock
	SummaryBlock
)

func (k BlockKind) String() string {
	switch k {
	case HeaderBlock:
		return "header"
	case FileBlock:
		return "file"
	case SummaryBlock:
		return "summary"
	default:
		return "unknown"
	}
}

// Block is one atomic unit of Markdown output.
type Block struct {
	Kind BlockKind
	Text string
}

// Len returns the block length in characters (Unicode code points).
func (b Block) Len() int {
	return CharCount(b.Text)
}

// Chunk is an ordered group of blocks that becomes one output file.
type Chunk struct {
	Number int
	Blocks []Block
}

// Len returns the total character length of the chunk.
func (c Chunk) Len() int {
	n := 0
	for _, b := range c.Blocks {
		n += b.Len()
	}
	return n
}

// Text concatenates the chunk's blocks.
func (c Chunk) Text() string {
	size := 0
	for _, b := range c.Blocks {
		size += len(b.Text)
	}
	buf := make([]byte, 0, size)
	for _, b := range c.Blocks {
		buf = append(buf, b.Text...)
	}
	return string(buf)
}

// CharCount is the length measure used for every budget.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Default budgets and naming.
const (
	DefaultOutputBase       = "code_chunk"
	DefaultMaxChunkChars    = 400000
	DefaultMaxFilePartChars = 300000
	DefaultMaxDepth         = 5
)

// TimestampLayout formats both the generation time and file modification times.
const TimestampLayout = "2006-01-02 15:04:05"
