package element

import (
	"slices"

	"github.com/beevik/etree"
)

// CodeList describes an ISO controlled vocabulary element such as
// gmd:MD_ProgressCode.
type CodeList struct {
	Element string   // inner coded element, e.g. "gmd:MD_ProgressCode"
	URI     string   // value of @codeList
	Values  []string // legal codeListValue values
}

// Contains reports whether v is a legal value of the list.
func (cl CodeList) Contains(v string) bool {
	return slices.Contains(cl.Values, v)
}

// Encode appends <wrapperTag><Element codeList codeListValue>value</Element>
// under parent. Nothing is written when value is empty or not a member of
// the list; the result reports whether the element was written.
func (cl CodeList) Encode(c Context, parent *etree.Element, wrapperTag, value string) bool {
	if value == "" || !cl.Contains(value) {
		return false
	}
	wrapper := parent.CreateElement(wrapperTag)
	cl.encodeInto(wrapper, value)
	return true
}

// EncodeInto writes the coded element directly under parent.
func (cl CodeList) EncodeInto(parent *etree.Element, value string) bool {
	if value == "" || !cl.Contains(value) {
		return false
	}
	cl.encodeInto(parent, value)
	return true
}

func (cl CodeList) encodeInto(parent *etree.Element, value string) {
	code := parent.CreateElement(cl.Element)
	code.CreateAttr("codeList", cl.URI)
	code.CreateAttr("codeListValue", value)
	code.SetText(value)
}

// Decode returns @codeListValue of the coded element under wrapper whose
// @codeList matches the list URI.
func (cl CodeList) Decode(wrapper *etree.Element) (string, bool) {
	if wrapper == nil {
		return "", false
	}
	for _, code := range wrapper.SelectElements(cl.Element) {
		if uri, _ := Attr(code, "codeList"); uri != cl.URI {
			continue
		}
		if v, ok := Attr(code, "codeListValue"); ok {
			return v, true
		}
	}
	return "", false
}

// DecodeAt locates path under el then decodes.
func (cl CodeList) DecodeAt(el *etree.Element, path string) (string, bool) {
	return cl.Decode(Find(el, path))
}
