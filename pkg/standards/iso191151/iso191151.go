// Package iso191151 generates and parses ISO 19115-1 metadata records,
// encoded as ISO 19139 (gmd:MD_Metadata) XML documents.
//
//	cfg, err := iso191151.Load("record.json")
//	doc, err := iso191151.NewMetadataRecord(cfg).GenerateXMLDocument()
//
// Required citations given as a DOI must be resolved first with
// Config.ResolveCitations.
package iso191151

import (
	"context"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/iso19115"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/namespaces"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

const (
	// ID identifies the standard.
	ID = "iso-19115-1"

	// SchemaName names the current configuration schema.
	SchemaName = "iso-19115-1-v4"

	// XSD is the record schema, relative to the XSD root.
	XSD = "iso-19139/gmd/gmd.xsd"
)

// SchemaID is the $schema of current configurations.
var SchemaID = configschema.ID(SchemaName)

// Config is an ISO 19115-1 configuration.
type Config struct {
	iso19115.Config
}

// Loads validates and decodes a JSON configuration.
func Loads(data []byte) (*Config, error) {
	return stdrecord.Loads[Config](SchemaName, data)
}

// Load reads a JSON configuration file.
func Load(path string) (*Config, error) {
	return stdrecord.Load[Config](SchemaName, path)
}

// Dumps encodes c as indented JSON.
func (c *Config) Dumps() ([]byte, error) { return stdrecord.Dumps(c) }

// Dump writes c to path as indented JSON.
func (c *Config) Dump(path string) error { return stdrecord.Dump(path, c) }

// Validate checks c against the configuration schema.
func (c *Config) Validate() error { return configschema.Validate(SchemaName, c) }

// ResolveCitations returns a copy of c with DOI citations resolved.
func (c *Config) ResolveCitations(ctx context.Context, resolver mdlib.CitationResolver) (*Config, error) {
	resolved, err := iso19115.ResolveCitations(ctx, &c.Config, resolver)
	if err != nil {
		return nil, err
	}
	return &Config{Config: *resolved}, nil
}

// Namespaces returns the namespace table of ISO 19115-1 records.
func Namespaces() *namespaces.Registry {
	return iso19115.Namespaces()
}

type Option = stdrecord.Option

var (
	WithXSDValidator     = stdrecord.WithXSDValidator
	WithCitationResolver = stdrecord.WithCitationResolver
	WithLogger           = stdrecord.WithLogger
)

var codec = &stdrecord.Codec[Config]{
	Standard:   ID,
	SchemaID:   SchemaID,
	RootTag:    "gmd:MD_Metadata",
	XSD:        XSD,
	Namespaces: Namespaces(),
	Encode: func(ctx element.Context, root *etree.Element, cfg *Config) error {
		return iso19115.EncodeRecord(ctx, root, &cfg.Config)
	},
	Decode: func(root *etree.Element, schemaID string) (*Config, error) {
		cfg, err := iso19115.DecodeRecord(root, schemaID)
		if err != nil {
			return nil, err
		}
		return &Config{Config: *cfg}, nil
	},
}

// MetadataRecord is an ISO 19115-1 record.
type MetadataRecord struct {
	*stdrecord.Record[Config]
}

// NewMetadataRecord returns a record configured from cfg.
func NewMetadataRecord(cfg *Config, opts ...Option) *MetadataRecord {
	return &MetadataRecord{codec.New(cfg, opts)}
}

// ParseMetadataRecord returns a record configured from an XML document.
func ParseMetadataRecord(data []byte, opts ...Option) (*MetadataRecord, error) {
	r, err := codec.Parse(data, opts)
	if err != nil {
		return nil, err
	}
	return &MetadataRecord{r}, nil
}
