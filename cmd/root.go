package cmd

import (
	"fmt"

	"codechunk/pkg/config"
	"codechunk/pkg/export"
	"codechunk/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the codechunk command. Config files are searched in configPaths,
// or in the default locations when none are given.
func NewRootCmd(configPaths ...string) *cobra.Command {
	v := config.NewViper(configPaths...)

	rootCmd := &cobra.Command{
		Use:   "codechunk <folder>",
		Short: "Export a codebase to chunked Markdown files",
		Long: `codechunk renders a folder's tree and the contents of its text files as Markdown,
split into numbered files ({output}_1.md, {output}_2.md, ...) that each stay under a
character budget, for tools with limited input size such as LLM context windows.`,
		Version:      version.Get().Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runExport(cmd, args[0], cfg)
		},
	}
	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.Flags().StringP(config.KeyOutput, "o", export.DefaultOutputBase, "Base name for output markdown chunks (e.g., code_chunk)")
	if err := v.BindPFlag(config.KeyOutput, rootCmd.Flags().Lookup(config.KeyOutput)); err != nil {
		panic(fmt.Sprintf("binding --%s: %v", config.KeyOutput, err))
	}

	return rootCmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
