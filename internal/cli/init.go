package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/fixtures"
	"github.com/antarctica/mdlib/pkg/standards"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

var initCmd = &cobra.Command{
	Use:   "init <standard>",
	Short: "Write a starter configuration",
	Long: `Write a minimal configuration for a standard to start from.

ISO 19115 configurations are given a fresh file identifier.

Examples:
  mdlib init iso-19115-1 -o record.json
  mdlib init iec-pas-61174-1`,
	Args:              requireArgs("standard"),
	ValidArgsFunction: completeStandards,
	RunE:              runInit,
}

var initFlags struct {
	output string
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFlags.output, "output", "o", "", "Write the configuration to a file instead of stdout")
}

func runInit(cmd *cobra.Command, args []string) error {
	std, err := standards.Lookup(args[0])
	if err != nil {
		return err
	}
	config, err := starterConfig(std.ID)
	if err != nil {
		return err
	}
	if err := std.ValidateConfig(config); err != nil {
		return fmt.Errorf("starter configuration is invalid: %w", err)
	}
	return writeOutput(cmd, initFlags.output, config)
}

// starterConfig returns the minimal fixture for standard, with a new
// file identifier for ISO 19115 standards.
func starterConfig(standard string) ([]byte, error) {
	data, err := fixtures.Config(standard, "minimal")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(standard, "iso-19115") {
		return data, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc["file_identifier"] = uuid.NewString()
	return stdrecord.Dumps(doc)
}
