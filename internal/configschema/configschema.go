package configschema

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// BaseURI prefixes every schema $id.
const BaseURI = "https://metadata-resources.data.bas.ac.uk/bas-metadata-generator-configuration-schemas/v2/"

var (
	mu       sync.Mutex
	resolved = map[string]*jsonschema.Resolved{}
)

// FS returns the embedded schemas filesystem, rooted at the schema files.
func FS() fs.FS {
	sub, err := fs.Sub(schemasFS, "schemas")
	if err != nil {
		panic(err)
	}
	return sub
}

// Names lists the embedded schemas in sorted order.
func Names() []string {
	entries, err := schemasFS.ReadDir("schemas")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// ID returns the $id of the named schema.
func ID(name string) string {
	return BaseURI + name + ".json"
}

// NameForID returns the schema name for a $schema value.
func NameForID(id string) (string, bool) {
	if !strings.HasPrefix(id, BaseURI) || !strings.HasSuffix(id, ".json") {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(id, BaseURI), ".json")
	if _, err := Raw(name); err != nil {
		return "", false
	}
	return name, true
}

// Raw returns the named schema document.
func Raw(name string) ([]byte, error) {
	data, err := schemasFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: no schema named %q", mdlib.ErrUnknownConfig, name)
	}
	return data, nil
}

// Lookup returns the resolved schema for name.
func Lookup(name string) (*jsonschema.Resolved, error) {
	mu.Lock()
	defer mu.Unlock()

	if rs, ok := resolved[name]; ok {
		return rs, nil
	}
	data, err := Raw(name)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}
	rs, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema %s: %w", name, err)
	}
	resolved[name] = rs
	return rs, nil
}

// ValidateJSON validates a JSON document against the named schema.
func ValidateJSON(name string, data []byte) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return &mdlib.ConfigValidationError{Schema: name, Message: err.Error()}
	}
	return ValidateInstance(name, instance)
}

// Validate marshals v to JSON and validates it against the named schema.
func Validate(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return ValidateJSON(name, data)
}

// ValidateInstance validates a decoded JSON value (maps, slices, strings,
// float64, bool and nil) against the named schema.
func ValidateInstance(name string, instance any) error {
	rs, err := Lookup(name)
	if err != nil {
		return err
	}
	if err := rs.Validate(instance); err != nil {
		return &mdlib.ConfigValidationError{Schema: name, Message: err.Error()}
	}
	return nil
}
