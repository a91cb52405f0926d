package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/hasher/internal/config"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	reportPath string
	verbose    bool
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "hasher [flags] directory [directory...]",
	Short: "Generate and validate digest sidecar files",
	Long: `hasher walks each directory argument, selects files by extension, and
computes MD5, SHA-1, SHA-256 and SHA-512 digests in a single read. For every
digest it either writes a sidecar next to the file (file.txt.md5, ...) or
checks an existing sidecar against the freshly computed value.

Behavior is controlled by hasher.yaml:

  file.extensions: .txt,.zip      # required, matched as file name suffixes
  digest.mode: generate           # generate, validate, or empty for both
  digest.types: MD5,SHA-256       # optional, defaults to all four

Arguments are processed in order. A failing file or directory is reported
and the run continues; the exit status is 1 if anything failed.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Usage()
		}
		return run(cmd.OutOrStdout(), args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hasher %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "path to project config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (warnings and errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
