// Package fixtures embeds named example configurations for each standard.
// They back the round-trip tests, the HTTP front-end and
// `mdlib fixtures capture`.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

//go:embed configs
var configsFS embed.FS

// FS returns the embedded configurations rooted at configs/.
func FS() fs.FS {
	sub, err := fs.Sub(configsFS, "configs")
	if err != nil {
		panic(err)
	}
	return sub
}

// Standards returns the standards that have fixtures, sorted.
func Standards() []string {
	entries, _ := configsFS.ReadDir("configs")
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

// Names returns the fixture names for standard, sorted.
func Names(standard string) []string {
	entries, err := configsFS.ReadDir(path.Join("configs", standard))
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Config returns the JSON of the named fixture.
func Config(standard, name string) ([]byte, error) {
	data, err := configsFS.ReadFile(path.Join("configs", standard, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: no %s configuration named %q (available: %s)",
			mdlib.ErrUnknownConfig, standard, name, strings.Join(Names(standard), ", "))
	}
	return data, nil
}
