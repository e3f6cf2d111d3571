package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrRootNotFound is returned when the root folder does not exist.
	ErrRootNotFound = errors.New("folder not found")
	// ErrNotDirectory is returned when the root path is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

// Result summarizes a completed run.
type Result struct {
	Files  int      // Files that produced output sections.
	Chunks []string // Paths of the written chunk files, in order.
}

// Run exports args.Root into numbered Markdown chunks.
func Run(args Arguments, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	args = args.withDefaults()
	startTime := time.Now()

	root, err := resolveRoot(args)
	if err != nil {
		logger.Error("Invalid root folder", zap.String("root", args.Root), zap.Error(err))
		return Result{}, err
	}
	logger.Info("Starting export",
		zap.String("root", root),
		zap.Int("maxChunkChars", args.MaxChunkChars),
		zap.Int("maxFilePartChars", args.MaxFilePartChars))

	tree, err := RenderTree(args.Fs, root, args.Ignore, args.MaxDepth, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate tree structure: %w", err)
	}

	entries, err := CollectFiles(args.Fs, root, args.Ignore, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to collect files: %w", err)
	}

	doc := Assemble(args.Fs, filepath.Base(root), args.Now(), tree, entries, args.MaxFilePartChars, logger)

	chunks, err := PlanChunks(doc.Blocks(), args.MaxChunkChars)
	if err != nil {
		logger.Error("Failed to pack chunks", zap.Error(err))
		return Result{}, err
	}

	writer := NewChunkWriter(args.Fs, args.OutputDir, args.OutputBase, args.Stdout, logger)
	written, err := writer.Write(chunks)
	if err != nil {
		return Result{Chunks: written}, err
	}

	result := Result{Files: doc.Inventory.Files, Chunks: written}
	logger.Info("Export completed",
		zap.Int("files", result.Files),
		zap.Int("chunks", len(written)),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// resolveRoot returns the absolute root path after checking that it is a directory.
func resolveRoot(args Arguments) (string, error) {
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := args.Fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, args.Root)
		}
		return "", fmt.Errorf("failed to stat %s: %w", args.Root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, args.Root)
	}
	return root, nil
}
