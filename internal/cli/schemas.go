package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/internal/scaffold"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "Work with the configuration JSON Schemas",
}

var schemasExportCmd = &cobra.Command{
	Use:   "export <target_path>",
	Short: "Write the configuration JSON Schemas to a directory",
	Long: `Write every configuration JSON Schema to the target directory.

Target directory must be empty or non-existent.`,
	Args:              requireArgs("target_path"),
	ValidArgsFunction: completeDirectories,
	RunE:              runSchemasExport,
}

var schemasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configuration JSON Schemas",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range configschema.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", name, configschema.ID(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
	schemasCmd.AddCommand(schemasExportCmd, schemasListCmd)
}

func runSchemasExport(cmd *cobra.Command, args []string) error {
	n, err := scaffold.NewWriter(newLogger(cmd)).CopyFS(configschema.FS(), ".", args[0])
	if err != nil {
		return err
	}
	printTree(cmd, args[0], fmt.Sprintf("Exported %d schemas", n))
	return nil
}
