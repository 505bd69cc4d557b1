package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/pkg/standards"
)

var validateCmd = &cobra.Command{
	Use:   "validate <standard> <file>",
	Short: "Validate a configuration or record",
	Long: `Validate a JSON configuration against the standard's JSON Schema, or
with --record an XML record against the standard's XML Schema.

Record validation runs xmllint against the schemas in schemas_dir.

Examples:
  mdlib validate iso-19115-1 record.json
  mdlib validate iso-19115-1 record.xml --record`,
	Args:              requireArgs("standard", "file"),
	ValidArgsFunction: completeStandards,
	RunE:              runValidate,
}

var validateFlags struct {
	record bool
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.record, "record", false, "Validate an XML record instead of a configuration")
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	std, err := standards.Lookup(args[0])
	if err != nil {
		return err
	}
	data, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	kind := "configuration"
	if validateFlags.record {
		kind = "record"
		settings, err := loadSettings(logger)
		if err != nil {
			return err
		}
		opts, err := recordOptions(settings, logger, false)
		if err != nil {
			return err
		}
		err = std.ValidateRecord(cmd.Context(), data, opts...)
		if err != nil {
			return err
		}
	} else if err := std.ValidateConfig(data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s is a valid %s %s\n", args[1], std.ID, kind)
	return nil
}
