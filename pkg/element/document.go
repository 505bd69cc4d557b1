package element

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/namespaces"
)

// NewRoot returns a root element named tag carrying the registry's
// namespace declarations and schema locations.
func NewRoot(ns *namespaces.Registry, tag string) *etree.Element {
	root := etree.NewElement(tag)
	ns.Declare(root)
	return root
}

// Parse reads an XML record and canonicalises its namespace prefixes.
func Parse(ns *namespaces.Registry, data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", mdlib.ErrInvalidRecord, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", mdlib.ErrInvalidRecord)
	}
	ns.Canonicalize(root)
	return root, nil
}

// Serialize writes root as a UTF-8 document with an XML declaration and
// two space indentation. root is not modified.
func Serialize(ns *namespaces.Registry, root *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.SetRoot(root.Copy())
	ns.Unqualify(doc.Root())
	doc.Indent(2)
	return doc.WriteToBytes()
}
