package stdrecord

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/namespaces"
)

// Codec describes how one standard maps configurations of type C to and
// from XML records.
type Codec[C any] struct {
	Standard   string // e.g. "iso-19115-1"
	SchemaID   string // $schema written into decoded configurations
	RootTag    string // canonically prefixed root element
	XSD        string // schema path relative to the XSD root
	Namespaces *namespaces.Registry
	Encode     func(ctx element.Context, root *etree.Element, cfg *C) error
	Decode     func(root *etree.Element, schemaID string) (*C, error)
}

// Record is a metadata record configured either from a configuration or
// from a parsed XML document.
type Record[C any] struct {
	codec  *Codec[C]
	config *C
	root   *etree.Element
	opts   Options
}

// New returns a record configured from cfg. cfg is not modified.
func (c *Codec[C]) New(cfg *C, opts []Option) *Record[C] {
	return &Record[C]{codec: c, config: cfg, opts: Apply(opts)}
}

// Parse returns a record configured from an XML document.
func (c *Codec[C]) Parse(data []byte, opts []Option) (*Record[C], error) {
	root, err := element.Parse(c.Namespaces, data)
	if err != nil {
		return nil, err
	}
	if root.FullTag() != c.RootTag {
		return nil, fmt.Errorf("%w: expected %s root element, found %s", mdlib.ErrInvalidRecord, c.RootTag, root.FullTag())
	}
	return &Record[C]{codec: c, root: root, opts: Apply(opts)}, nil
}

// MakeConfig returns the record's configuration decoded from its XML
// element. Records configured from a configuration are encoded first, so
// both construction paths yield the same result.
func (r *Record[C]) MakeConfig() (*C, error) {
	root, err := r.MakeElement()
	if err != nil {
		return nil, err
	}
	r.opts.Logger.Verbose("Decoding %s record", r.codec.Standard)
	return r.codec.Decode(root, r.codec.SchemaID)
}

// MakeElement returns the record's root element, encoding it from the
// configuration when the record was configured from one.
func (r *Record[C]) MakeElement() (*etree.Element, error) {
	if r.root != nil {
		return r.root, nil
	}
	r.opts.Logger.Verbose("Encoding %s record", r.codec.Standard)
	root := element.NewRoot(r.codec.Namespaces, r.codec.RootTag)
	if err := r.codec.Encode(element.NewContext(r.codec.Namespaces), root, r.config); err != nil {
		return nil, err
	}
	return root, nil
}

// GenerateXMLDocument returns the record as an XML document.
func (r *Record[C]) GenerateXMLDocument() ([]byte, error) {
	root, err := r.MakeElement()
	if err != nil {
		return nil, err
	}
	return element.Serialize(r.codec.Namespaces, root)
}

// Validate checks the generated document against the standard's XSD.
func (r *Record[C]) Validate(ctx context.Context) error {
	doc, err := r.GenerateXMLDocument()
	if err != nil {
		return err
	}
	return r.opts.ValidateDocument(ctx, r.codec.Standard, doc, r.codec.XSD)
}

// Options returns the record's options.
func (r *Record[C]) Options() Options { return r.opts }
