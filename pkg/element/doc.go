// Package element provides the shared building blocks used by every
// record element codec: a Context holding the namespace registry, path
// lookups returning explicit presence, anchors, code lists and document
// parsing and serialisation.
//
// Element codecs are plain functions or methods taking a Context and an
// *etree.Element. Encoders append under a parent; decoders read from a
// located element and return (value, present).
package element
