package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Document is the assembled output before packing.
type Document struct {
	Header    Block
	Files     []Block
	Summary   Block
	Inventory Inventory
}

// Blocks returns the document's blocks in output order.
func (d Document) Blocks() []Block {
	blocks := make([]Block, 0, len(d.Files)+2)
	blocks = append(blocks, d.Header)
	blocks = append(blocks, d.Files...)
	return append(blocks, d.Summary)
}

// Inventory aggregates the files that produced output sections.
type Inventory struct {
	Files      int
	TotalKB    float64
	Extensions map[string]struct{}
}

// Add records one readable file.
func (inv *Inventory) Add(fc FileContent) {
	if inv.Extensions == nil {
		inv.Extensions = make(map[string]struct{})
	}
	inv.Files++
	inv.TotalKB += fc.Stats.SizeKB
	ext := Extension(fc.Entry.RelPath)
	if ext == "" {
		ext = "unknown"
	}
	inv.Extensions[ext] = struct{}{}
}

// SortedExtensions returns the distinct extensions in ascending order.
func (inv *Inventory) SortedExtensions() []string {
	exts := make([]string, 0, len(inv.Extensions))
	for ext := range inv.Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Assemble reads every entry and builds the document. Unreadable files are logged and left out.
func Assemble(fs afero.Fs, rootName string, generated time.Time, tree []string, entries []FileEntry, maxPartChars int, logger *zap.Logger) Document {
	doc := Document{Header: FormatHeader(rootName, generated, tree)}

	for _, entry := range entries {
		fc, err := ReadFile(fs, entry)
		if err != nil {
			var unreadable *UnreadableError
			if errors.As(err, &unreadable) {
				logger.Warn("Skipping unreadable file", zap.String("file", entry.RelPath), zap.Error(unreadable.Err))
			} else {
				logger.Warn("Skipping file", zap.String("file", entry.RelPath), zap.Error(err))
			}
			continue
		}

		doc.Inventory.Add(fc)
		doc.Files = append(doc.Files, FormatFileBlocks(fc, maxPartChars)...)
		logger.Debug("Formatted file",
			zap.String("file", entry.RelPath),
			zap.String("language", fc.Language),
			zap.Int("lines", fc.Stats.Lines))
	}

	doc.Summary = FormatSummary(doc.Inventory)
	return doc
}

// FormatHeader renders the title, generation time and tree diagram.
func FormatHeader(rootName string, generated time.Time, tree []string) Block {
	text := strings.Join([]string{
		fmt.Sprintf("# Codebase Analysis: %s\n", rootName),
		fmt.Sprintf("Generated: %s\n", generated.Format(TimestampLayout)),
		"---\n\n## 📂 Project Structure\n",
		"```tree\n" + strings.Join(tree, "\n") + "\n```",
		"\n---\n\n## 📄 File Contents\n",
	}, "\n")
	return Block{Kind: HeaderBlock, Text: text}
}

// FormatFileBlocks renders one block per part of the file's content.
func FormatFileBlocks(fc FileContent, maxPartChars int) []Block {
	parts := SplitContent(fc.Text, maxPartChars)
	if len(parts) == 0 {
		parts = []string{""}
	}

	var meta strings.Builder
	fmt.Fprintf(&meta, "### %s\n", fc.Entry.RelPath)
	fmt.Fprintf(&meta, "- Size: %.2f KB\n", fc.Stats.SizeKB)
	fmt.Fprintf(&meta, "- Lines: %d\n", fc.Stats.Lines)
	fmt.Fprintf(&meta, "- Last Modified: %s\n", fc.Stats.Modified.Format(TimestampLayout))

	blocks := make([]Block, 0, len(parts))
	for i, part := range parts {
		var heading string
		switch {
		case len(parts) == 1:
			heading = meta.String()
		case i == 0:
			heading = meta.String() + fmt.Sprintf("- Part: 1/%d\n", len(parts))
		default:
			heading = fmt.Sprintf("### %s (continued, part %d/%d)\n", fc.Entry.RelPath, i+1, len(parts))
		}
		blocks = append(blocks, Block{Kind: FileBlock, Text: heading + fenced(fc.Language, part) + "\n---\n"})
	}
	return blocks
}

// FormatSummary renders the trailing totals.
func FormatSummary(inv Inventory) Block {
	text := strings.Join([]string{
		"\n---\n## 📊 Summary\n",
		fmt.Sprintf("- Total files: %d\n", inv.Files),
		fmt.Sprintf("- Total size: %.2f KB\n", inv.TotalKB),
		fmt.Sprintf("- File types: %s\n", strings.Join(inv.SortedExtensions(), ", ")),
	}, "\n")
	return Block{Kind: SummaryBlock, Text: text}
}

// fenced wraps content in a code fence longer than any backtick run inside it.
func fenced(language, content string) string {
	fence := strings.Repeat("`", max(3, longestBacktickRun(content)+1))
	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(language)
	b.WriteString("\n")
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(fence)
	b.WriteString("\n")
	return b.String()
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}
