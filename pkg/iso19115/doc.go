// Package iso19115 maps between the ISO 19115 configuration (current
// version, v4) and the ISO 19139 encoded gmd:MD_Metadata element tree.
//
// The element tree is shared by ISO 19115-1 and ISO 19115-2 records;
// the standard packages supply the root element and namespace table and
// call EncodeRecord and DecodeRecord.
//
// Encoding is pure. Required citations given as a DOI must be resolved
// first with ResolveCitations.
package iso19115
