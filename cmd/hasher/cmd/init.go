package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default hasher.yaml scaffold.
const initTemplate = `# hasher configuration

# File name suffixes to process (required). Matching is case-sensitive and
# needs no leading dot: "txt" also matches "notes.txt" and "mytxt".
file.extensions: .txt,.zip

# generate: only files missing at least one sidecar are processed.
# validate: only files with at least one sidecar are processed; nothing is written.
# Leave empty to generate missing sidecars and validate existing ones.
digest.mode: ""

# Any of MD5, SHA-1, SHA-256, SHA-512. Defaults to all four.
# digest.types: MD5,SHA-256
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter hasher.yaml configuration",
	Long: `Creates a hasher.yaml file in the current directory (or at --config) with
every supported key documented.

Use --force to overwrite an existing configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Set file.extensions to the files you want digested")
		info("  2. Run 'hasher <directory>' to write sidecars")
		info("  3. Set digest.mode to validate and run it again to check them")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
