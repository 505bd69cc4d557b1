package convert

import (
	"fmt"
	"strings"

	"github.com/antarctica/mdlib/pkg/iso19115"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

const (
	oglPhrase      = "licensed under the Open Government Licence v3.0"
	citationPhrase = "Cite this information as"
)

// V1ToV2 upgrades a v1 configuration.
func V1ToV2(in Document) (Document, error) {
	doc := clone(in)
	resource, ok := object(doc["resource"])
	if !ok {
		return nil, fmt.Errorf("%w: v1 configuration has no resource", mdlib.ErrInvalidConfig)
	}
	delete(doc, "resource")
	move(doc, resource, "distribution")
	doc["identification"] = resource

	if constraints, ok := object(resource["constraints"]); ok {
		for i, c := range list(constraints["usage"]) {
			if m, ok := object(c); ok {
				constraints["usage"].([]any)[i] = structureUsage(m)
			}
		}
	}

	setSchema(doc, 2)
	return doc, nil
}

// structureUsage recognises licence and citation statements in a free
// text usage constraint.
func structureUsage(c map[string]any) map[string]any {
	statement, _ := c["statement"].(string)
	href, hasHref := c["href"].(string)

	var key string
	switch {
	case strings.Contains(statement, oglPhrase):
		key = "copyright_licence"
	case strings.Contains(statement, citationPhrase):
		key = "required_citation"
	default:
		return c
	}

	inner := map[string]any{"statement": statement}
	if hasHref {
		inner["href"] = href
	}
	if key == "copyright_licence" && href == iso19115.Licences[oglCode].Href {
		inner["code"] = oglCode
	}

	out := map[string]any{key: inner}
	move(out, c, "restriction_code")
	return out
}

const oglCode = "OGL-UK-3.0"

// V2ToV1 downgrades a v2 configuration. Required citations given only as a
// DOI have no v1 form.
func V2ToV1(in Document) (Document, error) {
	doc := clone(in)
	identification, ok := object(doc["identification"])
	if !ok {
		return nil, fmt.Errorf("%w: v2 configuration has no identification", mdlib.ErrInvalidConfig)
	}
	delete(doc, "identification")
	move(identification, doc, "distribution")
	doc["resource"] = identification

	if constraints, ok := object(identification["constraints"]); ok {
		for i, c := range list(constraints["usage"]) {
			m, ok := object(c)
			if !ok {
				continue
			}
			flat, err := flattenUsage(m)
			if err != nil {
				return nil, err
			}
			constraints["usage"].([]any)[i] = flat
		}
	}

	setSchema(doc, 1)
	return doc, nil
}

func flattenUsage(c map[string]any) (map[string]any, error) {
	out := map[string]any{}
	move(out, c, "restriction_code", "statement", "href")

	if l, ok := object(c["copyright_licence"]); ok {
		licence := iso19115.ExpandLicence(iso19115.CopyrightLicence{
			Code:      str(l, "code"),
			Statement: str(l, "statement"),
			Href:      str(l, "href"),
		})
		setIf(out, "statement", licence.Statement)
		setIf(out, "href", licence.Href)
	}
	if rc, ok := object(c["required_citation"]); ok {
		if str(rc, "statement") == "" {
			return nil, fmt.Errorf("%w: required citation %q must be resolved before downgrading to v1",
				mdlib.ErrUnsupportedVersion, str(rc, "doi"))
		}
		setIf(out, "statement", str(rc, "statement"))
		setIf(out, "href", str(rc, "href"))
	}
	return out, nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func setIf(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
