package convert

import (
	"sort"

	"github.com/samber/lo"

	"github.com/antarctica/mdlib/pkg/iso19115"
)

// V3ToV4 upgrades a v3 configuration: every citation's date list becomes
// a map keyed by date type.
func V3ToV4(in Document) (Document, error) {
	doc := clone(in)
	walkDates(doc, func(dates any) any {
		items := list(dates)
		if items == nil {
			return dates
		}
		out := map[string]any{}
		for _, item := range items {
			m, ok := object(item)
			if !ok {
				continue
			}
			dateType, _ := m["date_type"].(string)
			delete(m, "date_type")
			out[dateType] = m
		}
		return out
	})
	setSchema(doc, 4)
	return doc, nil
}

// V4ToV3 downgrades a v4 configuration. Dates are listed in code list order.
func V4ToV3(in Document) (Document, error) {
	doc := clone(in)
	walkDates(doc, func(dates any) any {
		byType, ok := object(dates)
		if !ok {
			return dates
		}
		order := iso19115.DateTypes()
		extra := lo.Without(lo.Keys(byType), order...)
		sort.Strings(extra)

		var out []any
		for _, dateType := range append(order, extra...) {
			m, ok := object(byType[dateType])
			if !ok {
				continue
			}
			m["date_type"] = dateType
			out = append(out, m)
		}
		return out
	})
	setSchema(doc, 3)
	return doc, nil
}

// walkDates replaces the value of every "dates" property in v.
func walkDates(v any, fn func(any) any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if k == "dates" {
				t[k] = fn(child)
				continue
			}
			walkDates(child, fn)
		}
	case []any:
		for _, child := range t {
			walkDates(child, fn)
		}
	}
}
