// Package namespaces holds the XML namespace tables used by each standard.
//
// A Registry is immutable after construction and may be shared by every
// element of a record. Elements are always built and queried using the
// registry's canonical prefixes; the optional root namespace is only
// written unprefixed when a document is finalised for output.
package namespaces

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// XSI is the XML Schema instance namespace used for xsi:schemaLocation.
const XSI = "http://www.w3.org/2001/XMLSchema-instance"

// Namespace is one prefix to URI binding, with an optional XSD location.
type Namespace struct {
	Prefix         string
	URI            string
	SchemaLocation string
}

// Registry is an ordered table of namespaces with an optional root namespace.
type Registry struct {
	root    string
	entries []Namespace
	byURI   map[string]string
	byPfx   map[string]string
}

// New returns a registry. root names the prefix written as the default
// namespace on output, or "" when every element is prefixed.
func New(root string, entries ...Namespace) *Registry {
	r := &Registry{
		root:    root,
		entries: append([]Namespace(nil), entries...),
		byURI:   make(map[string]string, len(entries)),
		byPfx:   make(map[string]string, len(entries)),
	}
	for _, ns := range entries {
		r.byURI[ns.URI] = ns.Prefix
		r.byPfx[ns.Prefix] = ns.URI
	}
	return r
}

// Root returns the root namespace prefix, if any.
func (r *Registry) Root() string { return r.root }

// Entries returns a copy of the namespace table in declaration order.
func (r *Registry) Entries() []Namespace {
	return append([]Namespace(nil), r.entries...)
}

// NSMap returns prefix to URI bindings. Unless suppressRoot is set, the
// root namespace is keyed by "" rather than by its prefix.
func (r *Registry) NSMap(suppressRoot bool) map[string]string {
	m := make(map[string]string, len(r.entries))
	for _, ns := range r.entries {
		if !suppressRoot && ns.Prefix == r.root {
			m[""] = ns.URI
			continue
		}
		m[ns.Prefix] = ns.URI
	}
	return m
}

// SchemaLocations returns "uri location" pairs, space separated, for every
// namespace that declares a location.
func (r *Registry) SchemaLocations() string {
	var parts []string
	for _, ns := range r.entries {
		if ns.SchemaLocation == "" {
			continue
		}
		parts = append(parts, ns.URI, ns.SchemaLocation)
	}
	return strings.Join(parts, " ")
}

// URI returns the namespace URI bound to prefix.
func (r *Registry) URI(prefix string) (string, bool) {
	uri, ok := r.byPfx[prefix]
	return uri, ok
}

// Prefix returns the canonical prefix for uri.
func (r *Registry) Prefix(uri string) (string, bool) {
	p, ok := r.byURI[uri]
	return p, ok
}

// Tag returns the qualified tag for local in the prefix namespace as it is
// written on output: unprefixed for the root namespace.
func (r *Registry) Tag(prefix, local string) string {
	if prefix == "" || prefix == r.root {
		return local
	}
	return prefix + ":" + local
}

// Declare writes namespace declarations and xsi:schemaLocation onto root.
// The root namespace, if any, becomes the default namespace.
func (r *Registry) Declare(root *etree.Element) {
	for _, ns := range r.entries {
		if ns.Prefix == r.root {
			root.CreateAttr("xmlns", ns.URI)
			continue
		}
		root.CreateAttr("xmlns:"+ns.Prefix, ns.URI)
	}
	if loc := r.SchemaLocations(); loc != "" {
		if _, ok := r.byURI[XSI]; !ok {
			root.CreateAttr("xmlns:xsi", XSI)
		}
		root.CreateAttr("xsi:schemaLocation", loc)
	}
}

// Unqualify removes the root namespace prefix from every element under
// (and including) root, turning a prefixed declaration of the root
// namespace into the default namespace. Used when finalising a document
// for output.
func (r *Registry) Unqualify(root *etree.Element) {
	if r.root == "" {
		return
	}
	for i, a := range root.Attr {
		if a.Space == "xmlns" && a.Key == r.root {
			root.Attr[i].Space = ""
			root.Attr[i].Key = "xmlns"
		}
	}
	walk(root, func(el *etree.Element) {
		if el.Space == r.root {
			el.Space = ""
		}
	})
}

// Canonicalize rewrites every element and attribute prefix under root to
// this registry's canonical prefix for its namespace URI. Elements in a
// default namespace receive the matching prefix, so the tree can be
// queried with fully prefixed paths. Existing namespace declarations are
// replaced by the registry's own.
func (r *Registry) Canonicalize(root *etree.Element) {
	type rename struct {
		el    *etree.Element
		attr  int // -1 for the element itself
		space string
	}
	var renames []rename

	var visit func(el *etree.Element, scope map[string]string)
	visit = func(el *etree.Element, scope map[string]string) {
		scope = extendScope(scope, el)
		if p, ok := r.byURI[scope[el.Space]]; ok {
			renames = append(renames, rename{el: el, attr: -1, space: p})
		}
		for i, a := range el.Attr {
			if a.Space == "" || a.Space == "xmlns" {
				continue
			}
			if p, ok := r.byURI[scope[a.Space]]; ok {
				renames = append(renames, rename{el: el, attr: i, space: p})
			}
		}
		for _, c := range el.ChildElements() {
			visit(c, scope)
		}
	}
	visit(root, map[string]string{})

	for _, rn := range renames {
		if rn.attr < 0 {
			rn.el.Space = rn.space
		} else {
			rn.el.Attr[rn.attr].Space = rn.space
		}
	}

	walk(root, stripDeclarations)
	r.declarePrefixed(root)
}

func (r *Registry) declarePrefixed(root *etree.Element) {
	prefixes := make([]string, 0, len(r.byPfx))
	for p := range r.byPfx {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		root.CreateAttr("xmlns:"+p, r.byPfx[p])
	}
}

func extendScope(parent map[string]string, el *etree.Element) map[string]string {
	var scope map[string]string
	for _, a := range el.Attr {
		var key string
		switch {
		case a.Space == "" && a.Key == "xmlns":
			key = ""
		case a.Space == "xmlns":
			key = a.Key
		default:
			continue
		}
		if scope == nil {
			scope = make(map[string]string, len(parent)+1)
			for k, v := range parent {
				scope[k] = v
			}
		}
		scope[key] = a.Value
	}
	if scope == nil {
		return parent
	}
	return scope
}

func stripDeclarations(el *etree.Element) {
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if (a.Space == "" && a.Key == "xmlns") || a.Space == "xmlns" {
			continue
		}
		kept = append(kept, a)
	}
	el.Attr = kept
}

func walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, c := range el.ChildElements() {
		walk(c, fn)
	}
}
