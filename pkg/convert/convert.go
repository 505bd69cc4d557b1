package convert

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Document is a decoded JSON configuration.
type Document = map[string]any

// Supported versions.
const (
	First   = 1
	Current = 4
)

const schemaPrefix = "iso-19115-1-v"

// SchemaName returns the configuration schema name for version.
func SchemaName(version int) string {
	return schemaPrefix + strconv.Itoa(version)
}

// Version reads the configuration version from the document's $schema.
func Version(doc Document) (int, error) {
	id, _ := doc["$schema"].(string)
	name, ok := configschema.NameForID(id)
	if !ok || !strings.HasPrefix(name, schemaPrefix) {
		return 0, fmt.Errorf("%w: $schema %q", mdlib.ErrUnsupportedVersion, id)
	}
	v, err := strconv.Atoi(strings.TrimPrefix(name, schemaPrefix))
	if err != nil {
		return 0, fmt.Errorf("%w: $schema %q", mdlib.ErrUnsupportedVersion, id)
	}
	return v, nil
}

type step func(Document) (Document, error)

var (
	upgrades   = map[int]step{1: V1ToV2, 2: V2ToV3, 3: V3ToV4}
	downgrades = map[int]step{2: V2ToV1, 3: V3ToV2, 4: V4ToV3}
)

// Upgrade converts doc from version from to the later version to.
func Upgrade(doc Document, from, to int) (Document, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: cannot upgrade from v%d to v%d", mdlib.ErrUnsupportedVersion, from, to)
	}
	out := doc
	for v := from; v < to; v++ {
		var err error
		if out, err = upgrades[v](out); err != nil {
			return nil, fmt.Errorf("upgrading v%d to v%d: %w", v, v+1, err)
		}
	}
	return clone(out), nil
}

// Downgrade converts doc from version from to the earlier version to.
func Downgrade(doc Document, from, to int) (Document, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	if from < to {
		return nil, fmt.Errorf("%w: cannot downgrade from v%d to v%d", mdlib.ErrUnsupportedVersion, from, to)
	}
	out := doc
	for v := from; v > to; v-- {
		var err error
		if out, err = downgrades[v](out); err != nil {
			return nil, fmt.Errorf("downgrading v%d to v%d: %w", v, v-1, err)
		}
	}
	return clone(out), nil
}

// Convert converts doc from its own version to version to.
func Convert(doc Document, to int) (Document, error) {
	from, err := Version(doc)
	if err != nil {
		return nil, err
	}
	if from <= to {
		return Upgrade(doc, from, to)
	}
	return Downgrade(doc, from, to)
}

func checkRange(versions ...int) error {
	for _, v := range versions {
		if v < First || v > Current {
			return fmt.Errorf("%w: v%d", mdlib.ErrUnsupportedVersion, v)
		}
	}
	return nil
}

// clone deep copies doc through JSON, so numbers become float64.
func clone(doc Document) Document {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("convert: document is not JSON: %v", err))
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("convert: document is not JSON: %v", err))
	}
	return out
}

func setSchema(doc Document, version int) {
	doc["$schema"] = configschema.ID(SchemaName(version))
}

func object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}

func move(dst, src map[string]any, keys ...string) {
	for _, k := range keys {
		if v, ok := src[k]; ok {
			dst[k] = v
			delete(src, k)
		}
	}
}
