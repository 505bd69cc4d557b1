package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdlib",
	Short: "Metadata record generation for discovery metadata and route standards",
	Long: `mdlib converts between JSON configurations and XML records for
ISO 19115-1, ISO 19115-2, IEC PAS 61174 (RTZ 1.0 and 1.1) and a test standard.

Configurations are validated against JSON Schemas, records can be checked
against the standard's XML Schema with xmllint.

Settings are read from mdlib.yaml and MDLIB_* environment variables.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or unsupported version
  11 - Invalid record or RTZP container
  12 - Citation lookup failed
  13 - Unknown standard or configuration`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
