package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/pkg/standards"
)

var parseCmd = &cobra.Command{
	Use:   "parse <standard> <record.xml>",
	Short: "Parse an XML record into a configuration",
	Long: `Parse an XML record back into a JSON configuration.

Records are expected to have been produced by generate; other records
are read on a best effort basis. Use "-" to read the record from stdin.

Examples:
  mdlib parse iso-19115-1 record.xml
  mdlib parse iec-pas-61174-0 route.rtz -o route.json`,
	Args:              requireArgs("standard", "record.xml"),
	ValidArgsFunction: completeStandards,
	RunE:              runParse,
}

var parseFlags struct {
	output string
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFlags.output, "output", "o", "", "Write the configuration to a file instead of stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	std, err := standards.Lookup(args[0])
	if err != nil {
		return err
	}
	record, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	config, err := std.Parse(record)
	if err != nil {
		return fmt.Errorf("failed to parse %s record: %w", std.ID, err)
	}
	logger.Verbose("Parsed %s record", std.ID)
	return writeOutput(cmd, parseFlags.output, config)
}
