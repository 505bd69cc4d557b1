package convert

import (
	"fmt"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

var metadataKeys = []string{"language", "character_set", "contacts", "date_stamp", "maintenance", "metadata_standard"}

// V2ToV3 upgrades a v2 configuration.
func V2ToV3(in Document) (Document, error) {
	doc := clone(in)
	metadata := map[string]any{}
	move(metadata, doc, metadataKeys...)
	doc["metadata"] = metadata

	if identification, ok := object(doc["identification"]); ok {
		if grouped, ok := object(identification["constraints"]); ok {
			var flat []any
			for _, kind := range []string{"access", "usage"} {
				for _, c := range list(grouped[kind]) {
					if m, ok := object(c); ok {
						m["type"] = kind
						flat = append(flat, m)
					}
				}
			}
			if len(flat) > 0 {
				identification["constraints"] = flat
			} else {
				delete(identification, "constraints")
			}
		}
	}

	setSchema(doc, 3)
	return doc, nil
}

// V3ToV2 downgrades a v3 configuration.
func V3ToV2(in Document) (Document, error) {
	doc := clone(in)
	metadata, ok := object(doc["metadata"])
	if !ok {
		return nil, fmt.Errorf("%w: v3 configuration has no metadata", mdlib.ErrInvalidConfig)
	}
	delete(doc, "metadata")
	move(doc, metadata, metadataKeys...)

	if identification, ok := object(doc["identification"]); ok {
		if flat := list(identification["constraints"]); flat != nil {
			grouped := map[string]any{}
			for _, c := range flat {
				m, ok := object(c)
				if !ok {
					continue
				}
				kind, _ := m["type"].(string)
				delete(m, "type")
				existing, _ := grouped[kind].([]any)
				grouped[kind] = append(existing, m)
			}
			identification["constraints"] = grouped
		}
	}

	setSchema(doc, 2)
	return doc, nil
}
