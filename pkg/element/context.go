package element

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/namespaces"
)

// Context carries what element codecs share within one record.
type Context struct {
	NS *namespaces.Registry
}

// NewContext returns a Context for the given namespace registry.
func NewContext(ns *namespaces.Registry) Context {
	return Context{NS: ns}
}

// Child appends a new element named tag (canonically prefixed) to parent.
func (c Context) Child(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement(tag)
}

// Path appends a chain of nested elements, returning the innermost.
//
//	c.Path(root, "gmd:identificationInfo", "gmd:MD_DataIdentification")
func (c Context) Path(parent *etree.Element, tags ...string) *etree.Element {
	el := parent
	for _, tag := range tags {
		el = el.CreateElement(tag)
	}
	return el
}

// TextChild appends tag with text content to parent.
func (c Context) TextChild(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(text)
	return el
}

// Find returns the first element matching path, or nil.
func Find(el *etree.Element, path string) *etree.Element {
	if el == nil {
		return nil
	}
	return el.FindElement(path)
}

// FindAll returns every element matching path.
func FindAll(el *etree.Element, path string) []*etree.Element {
	if el == nil {
		return nil
	}
	return el.FindElements(path)
}

// Text returns the text of the element at path as written, whitespace
// included. It is absent when no element matches or the text is blank.
func Text(el *etree.Element, path string) (string, bool) {
	found := el
	if path != "" && path != "." {
		found = Find(el, path)
	}
	if found == nil {
		return "", false
	}
	s := found.Text()
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Token returns the trimmed text at path, for values that are parsed as
// numbers, dates, booleans or enumerations.
func Token(el *etree.Element, path string) (string, bool) {
	s, ok := Text(el, path)
	return strings.TrimSpace(s), ok
}

// Attr returns the value of attribute key (optionally prefixed) on el.
func Attr(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	a := el.SelectAttr(key)
	if a == nil || a.Value == "" {
		return "", false
	}
	return a.Value, true
}
