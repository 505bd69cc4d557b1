// Package convert upgrades and downgrades ISO 19115 configurations between
// schema versions.
//
// Each step is a pure function over a decoded JSON document and never
// modifies its input:
//
//	v1 <-> v2  "resource" becomes "identification"; distribution moves to the
//	           top level; free text usage constraints gain structure
//	v2 <-> v3  record level properties are grouped under "metadata";
//	           constraints become a flat list tagged by type
//	v3 <-> v4  citation dates become a map keyed by date type
//
// Upgrading v1 usage constraints relies on recognising the statement text
// of the Open Government Licence and of required citations.
package convert
