// Package stdrecord holds the plumbing shared by the standard packages:
// record options, configuration file handling and document output.
package stdrecord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/antarctica/mdlib/internal/configschema"
	"github.com/antarctica/mdlib/internal/logging"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Options are the collaborators of a metadata record.
type Options struct {
	Validator mdlib.XSDValidator
	Resolver  mdlib.CitationResolver
	Logger    mdlib.Logger
}

// Option configures a metadata record.
type Option func(*Options)

// WithXSDValidator sets the validator used by MetadataRecord.Validate.
func WithXSDValidator(v mdlib.XSDValidator) Option {
	return func(o *Options) { o.Validator = v }
}

// WithCitationResolver sets the resolver for DOI based citations.
func WithCitationResolver(r mdlib.CitationResolver) Option {
	return func(o *Options) { o.Resolver = r }
}

// WithLogger sets the logger.
func WithLogger(l mdlib.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Apply returns the options with defaults filled in.
func Apply(opts []Option) Options {
	o := Options{Logger: logging.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ValidateDocument checks document against the standard's XSD.
func (o Options) ValidateDocument(ctx context.Context, standard string, document []byte, xsd string) error {
	if o.Validator == nil {
		return mdlib.ErrNoValidator
	}
	o.Logger.Verbose("Validating %s record (%d bytes)", standard, len(document))
	return o.Validator.Validate(ctx, standard, document, xsd)
}

// Loads validates data against the named schema, then decodes it into T.
func Loads[T any](schema string, data []byte) (*T, error) {
	if err := configschema.ValidateJSON(schema, data); err != nil {
		return nil, err
	}
	var cfg T
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &mdlib.ConfigValidationError{Schema: schema, Message: err.Error()}
	}
	return &cfg, nil
}

// Load reads and decodes the configuration file at path.
func Load[T any](schema, path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Loads[T](schema, data)
}

// Dumps encodes cfg as indented JSON with a trailing newline.
func Dumps(cfg any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Dump writes cfg to path.
func Dump(path string, cfg any) error {
	data, err := Dumps(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
