package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/fixtures"
	"github.com/antarctica/mdlib/internal/scaffold"
	"github.com/antarctica/mdlib/pkg/standards"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Work with the embedded test configurations",
}

var fixturesCaptureCmd = &cobra.Command{
	Use:   "capture <target_path>",
	Short: "Write every embedded configuration and its generated record",
	Long: `Write every embedded configuration, and the record generated from it,
into the target directory as <standard>/<name>.json and <standard>/<name>.xml.

Target directory must be empty or non-existent.`,
	Args:              requireArgs("target_path"),
	ValidArgsFunction: completeDirectories,
	RunE:              runFixturesCapture,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
	fixturesCmd.AddCommand(fixturesCaptureCmd)
}

func runFixturesCapture(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	files := make(map[string][]byte)

	for _, id := range fixtures.Standards() {
		std, err := standards.Lookup(id)
		if err != nil {
			return err
		}
		for _, name := range fixtures.Names(id) {
			config, err := fixtures.Config(id, name)
			if err != nil {
				return err
			}
			record, err := std.Generate(cmd.Context(), config)
			if err != nil {
				return fmt.Errorf("failed to generate %s/%s: %w", id, name, err)
			}
			files[id+"/"+name+".json"] = config
			files[id+"/"+name+".xml"] = record
		}
	}

	if err := scaffold.NewWriter(logger).WriteFiles(args[0], files); err != nil {
		return err
	}
	printTree(cmd, args[0], fmt.Sprintf("Captured %d files", len(files)))
	return nil
}

// printTree reports written files on stderr. Tree errors are not fatal.
func printTree(cmd *cobra.Command, path, summary string) {
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "✓ %s\n", summary)
	tree, err := scaffold.BuildFileTree(path)
	if err != nil {
		return
	}
	fmt.Fprint(out, tree)
}
