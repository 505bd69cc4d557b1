// Package configschema embeds the JSON Schemas for every supported
// configuration (standard and version) and validates configurations
// against them.
//
// Schemas are named "<standard>-v<version>", for example "iso-19115-1-v4".
// Each schema's $id is the value a configuration carries in its $schema
// property. Resolved schemas are cached after first use and are safe for
// concurrent use.
package configschema
