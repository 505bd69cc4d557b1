package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// requireArgs validates that exactly the named positional arguments are
// provided. Returns a helpful error message with usage if missing or too many.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			missing := make([]string, 0, len(names)-len(args))
			for _, n := range names[len(args):] {
				missing = append(missing, "<"+n+">")
			}
			return fmt.Errorf(`missing required argument: %s

Usage: %s`, strings.Join(missing, " "), cmd.UseLine())
		}
		if len(args) > len(names) {
			return fmt.Errorf("accepts %d arg(s), received %d", len(names), len(args))
		}
		return nil
	}
}
