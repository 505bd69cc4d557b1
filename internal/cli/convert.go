package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/pkg/convert"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

var convertCmd = &cobra.Command{
	Use:   "convert <config.json>",
	Short: "Convert an ISO 19115 configuration between schema versions",
	Long: `Upgrade or downgrade an ISO 19115 configuration between schema
versions 1 and 4.

The source version is read from the configuration's $schema unless
--from is given. The result is validated against the target schema.

Examples:
  mdlib convert old.json --to 4
  mdlib convert record.json --from 4 --to 2 -o record-v2.json`,
	Args: requireArgs("config.json"),
	RunE: runConvert,
}

var convertFlags struct {
	from   int
	to     int
	output string
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntVar(&convertFlags.from, "from", 0, "Source version (default: detected from $schema)")
	convertCmd.Flags().IntVar(&convertFlags.to, "to", convert.Current, "Target version")
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "", "Write the configuration to a file instead of stdout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	var doc convert.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s is not a JSON object: %w", args[0], err)
	}

	from := convertFlags.from
	if from == 0 {
		if from, err = convert.Version(doc); err != nil {
			return err
		}
	}
	logger.Verbose("Converting v%d to v%d", from, convertFlags.to)

	var out convert.Document
	if from <= convertFlags.to {
		out, err = convert.Upgrade(doc, from, convertFlags.to)
	} else {
		out, err = convert.Downgrade(doc, from, convertFlags.to)
	}
	if err != nil {
		return err
	}
	if err := configschema.ValidateInstance(convert.SchemaName(convertFlags.to), out); err != nil {
		return err
	}

	result, err := stdrecord.Dumps(out)
	if err != nil {
		return err
	}
	return writeOutput(cmd, convertFlags.output, result)
}
