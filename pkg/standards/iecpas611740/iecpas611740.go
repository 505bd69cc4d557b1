// Package iecpas611740 generates and parses IEC PAS 61174-0 route plans,
// encoded as RTZ 1.0 documents and optionally packed as RTZP containers.
package iecpas611740

import (
	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/internal/rtzp"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/namespaces"
	"github.com/antarctica/mdlib/pkg/route"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

const (
	ID         = "iec-pas-61174-0"
	SchemaName = "iec-pas-61174-0-v1"
	XSD        = "rtz/rtz-1.0.xsd"

	// Version is written as route@version.
	Version = "1.0"
)

var SchemaID = configschema.ID(SchemaName)

// Config is an RTZ 1.0 route configuration.
type Config struct {
	route.Config
}

func Loads(data []byte) (*Config, error) {
	return stdrecord.Loads[Config](SchemaName, data)
}

func Load(path string) (*Config, error) {
	return stdrecord.Load[Config](SchemaName, path)
}

func (c *Config) Dumps() ([]byte, error) { return stdrecord.Dumps(c) }

func (c *Config) Dump(path string) error { return stdrecord.Dump(path, c) }

func (c *Config) Validate() error { return configschema.Validate(SchemaName, c) }

// Namespaces returns the RTZ 1.0 namespace table.
func Namespaces() *namespaces.Registry {
	return route.Namespaces(route.NamespaceRTZ10, "https://www.cirm.org/rtz/RTZ_Schema_version_1_0.xsd")
}

type Option = stdrecord.Option

var (
	WithXSDValidator = stdrecord.WithXSDValidator
	WithLogger       = stdrecord.WithLogger
)

var codec = &stdrecord.Codec[Config]{
	Standard:   ID,
	SchemaID:   SchemaID,
	RootTag:    "rtz:route",
	XSD:        XSD,
	Namespaces: Namespaces(),
	Encode: func(ctx element.Context, root *etree.Element, cfg *Config) error {
		root.CreateAttr("version", Version)
		return route.Encode(ctx, root, &cfg.Config)
	},
	Decode: func(root *etree.Element, schemaID string) (*Config, error) {
		cfg, err := route.Decode(root, schemaID)
		if err != nil {
			return nil, err
		}
		return &Config{Config: *cfg}, nil
	},
}

// MetadataRecord is an RTZ 1.0 route document.
type MetadataRecord struct {
	*stdrecord.Record[Config]
}

func NewMetadataRecord(cfg *Config, opts ...Option) *MetadataRecord {
	return &MetadataRecord{codec.New(cfg, opts)}
}

func ParseMetadataRecord(data []byte, opts ...Option) (*MetadataRecord, error) {
	r, err := codec.Parse(data, opts)
	if err != nil {
		return nil, err
	}
	return &MetadataRecord{r}, nil
}

// LoadRTZP parses the route document held in an RTZP container.
func LoadRTZP(data []byte, opts ...Option) (*MetadataRecord, error) {
	doc, err := rtzp.Unpack(data)
	if err != nil {
		return nil, err
	}
	return ParseMetadataRecord(doc, opts...)
}

// DumpRTZP packs the record into an RTZP container as <name>.rtz. An empty
// name uses the route name.
func DumpRTZP(r *MetadataRecord, name string) ([]byte, error) {
	if name == "" {
		cfg, err := r.MakeConfig()
		if err != nil {
			return nil, err
		}
		name = cfg.RouteName
	}
	doc, err := r.GenerateXMLDocument()
	if err != nil {
		return nil, err
	}
	return rtzp.Pack(name, doc)
}
