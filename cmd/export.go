package cmd

import (
	"fmt"
	"os"

	"codechunk/pkg/config"
	"codechunk/pkg/export"
	"codechunk/pkg/logging"
	"codechunk/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runExport sets up the logger and exports root with the resolved configuration.
func runExport(cmd *cobra.Command, root string, cfg config.Config) error {
	logger, err := logging.Setup(cfg.Debug, "codechunk", version.Get().Version)
	if err != nil {
		cmd.PrintErrf("Failed to initialize logger, continuing without diagnostics: %v\n", err)
	}
	defer syncLogger(logger)

	args := cfg.Arguments(root, logger)
	args.Stdout = cmd.OutOrStdout()

	result, err := export.Run(args, logger)
	if err != nil {
		return err
	}
	if result.Files == 0 {
		logger.Warn("No files exported", zap.String("root", root))
	}
	return nil
}

// syncLogger flushes the logger when stderr can be synced. Terminals and pipes on some
// platforms reject fsync with EINVAL, which is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !stderrSyncable() {
		return
	}
	if err := logger.Sync(); err != nil && !isInvalidArgument(err) {
		fmt.Fprintf(os.Stderr, "Logger sync failed: %v\n", err)
	}
}
