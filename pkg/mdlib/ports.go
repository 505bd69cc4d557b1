package mdlib

import "context"

// CitationResolver turns a DOI into formatted citation text.
//
// Encoding a record never performs I/O; required citations given as a DOI are
// resolved ahead of encoding through this port.
type CitationResolver interface {
	// Resolve returns the bibliography text for doi (a https://doi.org/... URL).
	// Failures from the citation service must be returned, never swallowed.
	Resolve(ctx context.Context, doi string) (string, error)
}

// XSDValidator checks an XML document against an XML Schema.
type XSDValidator interface {
	// Validate returns a *RecordValidationError when document does not
	// conform to the schema at schemaPath (relative to the validator's schema root).
	Validate(ctx context.Context, standard string, document []byte, schemaPath string) error
}
