// Package tui styles terminal output when it is going to a person.
package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Styled reports whether output written to w should carry colour.
//
// Returns false if:
//   - MDLIB_NO_COLOR=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - w is not a terminal
func Styled(w io.Writer) bool {
	if os.Getenv("MDLIB_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
