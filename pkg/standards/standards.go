// Package standards registers every supported metadata standard behind a
// uniform adapter, used by the CLI and the HTTP front-end.
package standards

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards/iecpas611740"
	"github.com/antarctica/mdlib/pkg/standards/iecpas611741"
	"github.com/antarctica/mdlib/pkg/standards/iso191151"
	"github.com/antarctica/mdlib/pkg/standards/iso191152"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
	"github.com/antarctica/mdlib/pkg/standards/teststandard"
)

// Standard converts between configuration JSON and XML records for one
// standard.
type Standard struct {
	ID         string
	SchemaName string // current configuration schema
	XSD        string // record schema path relative to the XSD root

	generate func(ctx context.Context, config []byte, o stdrecord.Options, opts []stdrecord.Option) ([]byte, error)
	parse    func(record []byte, opts []stdrecord.Option) ([]byte, error)
}

// SchemaID returns the $id of the current configuration schema.
func (s Standard) SchemaID() string { return configschema.ID(s.SchemaName) }

// Generate validates a JSON configuration and returns the XML record.
// DOI citations are resolved first when a resolver option is given.
func (s Standard) Generate(ctx context.Context, config []byte, opts ...stdrecord.Option) ([]byte, error) {
	return s.generate(ctx, config, stdrecord.Apply(opts), opts)
}

// Parse reads an XML record and returns its configuration as JSON.
func (s Standard) Parse(record []byte, opts ...stdrecord.Option) ([]byte, error) {
	return s.parse(record, opts)
}

// ValidateConfig checks a JSON configuration against the current schema.
func (s Standard) ValidateConfig(config []byte) error {
	return configschema.ValidateJSON(s.SchemaName, config)
}

// ValidateRecord checks an XML record against the standard's XSD.
func (s Standard) ValidateRecord(ctx context.Context, record []byte, opts ...stdrecord.Option) error {
	return stdrecord.Apply(opts).ValidateDocument(ctx, s.ID, record, s.XSD)
}

type record[C any] interface {
	GenerateXMLDocument() ([]byte, error)
	MakeConfig() (*C, error)
}

func define[C any, R record[C]](
	id, schemaName, xsd string,
	load func([]byte) (*C, error),
	newRecord func(*C, ...stdrecord.Option) R,
	parseRecord func([]byte, ...stdrecord.Option) (R, error),
	prepare func(context.Context, *C, stdrecord.Options) (*C, error),
) Standard {
	return Standard{
		ID:         id,
		SchemaName: schemaName,
		XSD:        xsd,
		generate: func(ctx context.Context, data []byte, o stdrecord.Options, opts []stdrecord.Option) ([]byte, error) {
			cfg, err := load(data)
			if err != nil {
				return nil, err
			}
			if prepare != nil {
				if cfg, err = prepare(ctx, cfg, o); err != nil {
					return nil, err
				}
			}
			return newRecord(cfg, opts...).GenerateXMLDocument()
		},
		parse: func(data []byte, opts []stdrecord.Option) ([]byte, error) {
			r, err := parseRecord(data, opts...)
			if err != nil {
				return nil, err
			}
			cfg, err := r.MakeConfig()
			if err != nil {
				return nil, err
			}
			return stdrecord.Dumps(cfg)
		},
	}
}

func resolveISO1(ctx context.Context, cfg *iso191151.Config, o stdrecord.Options) (*iso191151.Config, error) {
	if o.Resolver == nil {
		return cfg, nil
	}
	return cfg.ResolveCitations(ctx, o.Resolver)
}

func resolveISO2(ctx context.Context, cfg *iso191152.Config, o stdrecord.Options) (*iso191152.Config, error) {
	if o.Resolver == nil {
		return cfg, nil
	}
	return cfg.ResolveCitations(ctx, o.Resolver)
}

var registry = map[string]Standard{
	iso191151.ID: define(iso191151.ID, iso191151.SchemaName, iso191151.XSD,
		iso191151.Loads, iso191151.NewMetadataRecord, iso191151.ParseMetadataRecord, resolveISO1),
	iso191152.ID: define(iso191152.ID, iso191152.SchemaName, iso191152.XSD,
		iso191152.Loads, iso191152.NewMetadataRecord, iso191152.ParseMetadataRecord, resolveISO2),
	iecpas611740.ID: define(iecpas611740.ID, iecpas611740.SchemaName, iecpas611740.XSD,
		iecpas611740.Loads, iecpas611740.NewMetadataRecord, iecpas611740.ParseMetadataRecord, nil),
	iecpas611741.ID: define(iecpas611741.ID, iecpas611741.SchemaName, iecpas611741.XSD,
		iecpas611741.Loads, iecpas611741.NewMetadataRecord, iecpas611741.ParseMetadataRecord, nil),
	teststandard.ID: define(teststandard.ID, teststandard.SchemaName, teststandard.XSD,
		teststandard.Loads, teststandard.NewMetadataRecord, teststandard.ParseMetadataRecord, nil),
}

// IDs returns the registered standard identifiers, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the standard registered as id.
func Lookup(id string) (Standard, error) {
	s, ok := registry[id]
	if !ok {
		return Standard{}, fmt.Errorf("%w: %q (available: %s)", mdlib.ErrUnknownStandard, id, strings.Join(IDs(), ", "))
	}
	return s, nil
}
