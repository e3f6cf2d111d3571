package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrHeaderTooLarge is returned when the header block alone exceeds the chunk budget.
var ErrHeaderTooLarge = errors.New("header and tree too large for a single chunk")

// PlanChunks packs blocks greedily, in order, into chunks of at most maxChars characters.
// A new chunk starts when the next block would overflow a non-empty chunk, so a block larger
// than maxChars sits alone in its own chunk. The first block must fit within maxChars.
func PlanChunks(blocks []Block, maxChars int) ([]Chunk, error) {
	if len(blocks) > 0 && blocks[0].Len() > maxChars {
		return nil, fmt.Errorf("%w: %d characters, limit %d", ErrHeaderTooLarge, blocks[0].Len(), maxChars)
	}

	var chunks []Chunk
	current := Chunk{Number: 1}
	size := 0
	for _, block := range blocks {
		n := block.Len()
		if size+n > maxChars && len(current.Blocks) > 0 {
			chunks = append(chunks, current)
			current = Chunk{Number: current.Number + 1}
			size = 0
		}
		current.Blocks = append(current.Blocks, block)
		size += n
	}
	if len(current.Blocks) > 0 {
		chunks = append(chunks, current)
	}
	return chunks, nil
}

// ChunkWriter writes planned chunks as numbered Markdown files.
type ChunkWriter struct {
	fs     afero.Fs
	dir    string
	base   string
	out    io.Writer
	logger *zap.Logger
}

// NewChunkWriter returns a writer placing `<base>_<n>.md` files in dir.
func NewChunkWriter(fs afero.Fs, dir, base string, out io.Writer, logger *zap.Logger) *ChunkWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChunkWriter{fs: fs, dir: dir, base: base, out: out, logger: logger}
}

// ChunkPath returns the output path for chunk number n.
func (w *ChunkWriter) ChunkPath(n int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%d.md", w.base, n))
}

// Write writes each chunk in order, overwriting existing files, and prints one confirmation
// line per chunk. It stops at the first failed write and returns the paths written so far.
func (w *ChunkWriter) Write(chunks []Chunk) ([]string, error) {
	if len(chunks) > 0 {
		if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
			w.logger.Error("Failed to create output directory", zap.String("dir", w.dir), zap.Error(err))
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	written := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		path := w.ChunkPath(chunk.Number)
		if err := afero.WriteFile(w.fs, path, []byte(chunk.Text()), 0o644); err != nil {
			w.logger.Error("Failed to write chunk", zap.String("path", path), zap.Error(err))
			return written, fmt.Errorf("failed to write chunk %d: %w", chunk.Number, err)
		}
		written = append(written, path)

		display := path
		if abs, err := filepath.Abs(path); err == nil {
			display = abs
		}
		fmt.Fprintf(w.out, "✅ Chunk %d exported to %s\n", chunk.Number, display)
		w.logger.Debug("Wrote chunk",
			zap.String("path", path),
			zap.Int("blocks", len(chunk.Blocks)),
			zap.Int("chars", chunk.Len()))
	}
	return written, nil
}
