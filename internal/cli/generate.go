package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/pkg/standards"
)

var generateCmd = &cobra.Command{
	Use:   "generate <standard> <config.json>",
	Short: "Generate an XML record from a configuration",
	Long: `Generate an XML record from a JSON configuration.

The configuration is validated against the standard's JSON Schema first.
Use "-" to read the configuration from stdin.

Required citations given only as a DOI must be resolved with
--resolve-citations, which looks them up through the DOI resolver.

Examples:
  mdlib generate iso-19115-1 record.json
  mdlib generate iso-19115-1 record.json -o record.xml --resolve-citations
  mdlib generate iec-pas-61174-1 route.json`,
	Args:              requireArgs("standard", "config.json"),
	ValidArgsFunction: completeStandards,
	RunE:              runGenerate,
}

var generateFlags struct {
	output           string
	resolveCitations bool
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "Write the record to a file instead of stdout")
	generateCmd.Flags().BoolVar(&generateFlags.resolveCitations, "resolve-citations", false, "Resolve DOI citations before generating")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	std, err := standards.Lookup(args[0])
	if err != nil {
		return err
	}
	config, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}
	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}
	opts, err := recordOptions(settings, logger, generateFlags.resolveCitations)
	if err != nil {
		return err
	}

	record, err := std.Generate(cmd.Context(), config, opts...)
	if err != nil {
		return fmt.Errorf("failed to generate %s record: %w", std.ID, err)
	}
	logger.Verbose("Generated %d bytes", len(record))
	return writeOutput(cmd, generateFlags.output, record)
}
