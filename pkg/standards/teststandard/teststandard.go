// Package teststandard is a minimal standard used to exercise the record
// machinery end to end: a ts:record root holding a single ts:title.
package teststandard

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/namespaces"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

const (
	ID         = "test-standard"
	SchemaName = "test-standard-v1"
	XSD        = "test-standard/test-standard.xsd"

	NamespaceTS    = "https://metadata-standards.data.bas.ac.uk/standards/test-standard/v1"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
)

var SchemaID = configschema.ID(SchemaName)

// Config is a test standard configuration.
type Config struct {
	Schema string `json:"$schema"`
	Title  Title  `json:"title"`
}

type Title struct {
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
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

func Namespaces() *namespaces.Registry {
	return namespaces.New("",
		namespaces.Namespace{Prefix: "ts", URI: NamespaceTS, SchemaLocation: NamespaceTS + "/test-standard.xsd"},
		namespaces.Namespace{Prefix: "xlink", URI: NamespaceXLink},
		namespaces.Namespace{Prefix: "xsi", URI: namespaces.XSI},
	)
}

type Option = stdrecord.Option

var (
	WithXSDValidator = stdrecord.WithXSDValidator
	WithLogger       = stdrecord.WithLogger
)

func encode(ctx element.Context, root *etree.Element, cfg *Config) error {
	title := ctx.TextChild(root, "ts:title", cfg.Title.Value)
	if cfg.Title.Href != "" {
		title.CreateAttr("xlink:href", cfg.Title.Href)
	}
	return nil
}

func decode(root *etree.Element, schemaID string) (*Config, error) {
	title := element.Find(root, "ts:title")
	if title == nil {
		return nil, fmt.Errorf("%w: record has no title", mdlib.ErrInvalidRecord)
	}
	cfg := &Config{Schema: schemaID}
	cfg.Title.Value, _ = element.Text(title, "")
	cfg.Title.Href, _ = element.Attr(title, "xlink:href")
	return cfg, nil
}

var codec = &stdrecord.Codec[Config]{
	Standard:   ID,
	SchemaID:   SchemaID,
	RootTag:    "ts:record",
	XSD:        XSD,
	Namespaces: Namespaces(),
	Encode:     encode,
	Decode:     decode,
}

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
