package element

import (
	"strconv"

	"github.com/beevik/etree"
)

// Anchor is a text value with an optional link, written as gmx:Anchor when
// linked and gco:CharacterString otherwise.
type Anchor struct {
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
	Title string `json:"title,omitempty"`
}

// CharacterString appends <tag><gco:CharacterString>value</...></tag>.
func (c Context) CharacterString(parent *etree.Element, tag, value string) *etree.Element {
	wrapper := parent.CreateElement(tag)
	wrapper.CreateElement("gco:CharacterString").SetText(value)
	return wrapper
}

// Decimal appends <tag><gco:Decimal>v</...></tag>.
func (c Context) Decimal(parent *etree.Element, tag string, v float64) *etree.Element {
	wrapper := parent.CreateElement(tag)
	wrapper.CreateElement("gco:Decimal").SetText(FormatFloat(v))
	return wrapper
}

// Real appends <tag><gco:Real>v</...></tag>.
func (c Context) Real(parent *etree.Element, tag string, v float64) *etree.Element {
	wrapper := parent.CreateElement(tag)
	wrapper.CreateElement("gco:Real").SetText(FormatFloat(v))
	return wrapper
}

// Integer appends <tag><gco:Integer>v</...></tag>.
func (c Context) Integer(parent *etree.Element, tag string, v int) *etree.Element {
	wrapper := parent.CreateElement(tag)
	wrapper.CreateElement("gco:Integer").SetText(strconv.Itoa(v))
	return wrapper
}

// Boolean appends <tag><gco:Boolean>v</...></tag>.
func (c Context) Boolean(parent *etree.Element, tag string, v bool) *etree.Element {
	wrapper := parent.CreateElement(tag)
	wrapper.CreateElement("gco:Boolean").SetText(strconv.FormatBool(v))
	return wrapper
}

// EncodeAnchor appends tag holding a as gmx:Anchor or gco:CharacterString.
func (c Context) EncodeAnchor(parent *etree.Element, tag string, a Anchor) *etree.Element {
	wrapper := parent.CreateElement(tag)
	c.anchorInto(wrapper, a)
	return wrapper
}

func (c Context) anchorInto(wrapper *etree.Element, a Anchor) {
	if a.Href == "" {
		wrapper.CreateElement("gco:CharacterString").SetText(a.Value)
		return
	}
	anchor := wrapper.CreateElement("gmx:Anchor")
	anchor.CreateAttr("xlink:href", a.Href)
	if a.Title != "" {
		anchor.CreateAttr("xlink:title", a.Title)
	}
	anchor.CreateAttr("xlink:actuate", "onRequest")
	anchor.SetText(a.Value)
}

// DecodeAnchor reads the anchor or character string held by wrapper.
func DecodeAnchor(wrapper *etree.Element) (Anchor, bool) {
	if wrapper == nil {
		return Anchor{}, false
	}
	if el := wrapper.SelectElement("gmx:Anchor"); el != nil {
		a := Anchor{}
		a.Value, _ = Text(el, "")
		a.Href, _ = Attr(el, "xlink:href")
		a.Title, _ = Attr(el, "xlink:title")
		return a, a.Value != "" || a.Href != ""
	}
	if s, ok := Text(wrapper, "gco:CharacterString"); ok {
		return Anchor{Value: s}, true
	}
	return Anchor{}, false
}

// DecodeAnchorAt locates path under el then decodes its anchor.
func DecodeAnchorAt(el *etree.Element, path string) (Anchor, bool) {
	return DecodeAnchor(Find(el, path))
}

// CharacterStringAt returns the gco:CharacterString text under path.
func CharacterStringAt(el *etree.Element, path string) (string, bool) {
	return Text(el, path+"/gco:CharacterString")
}

// FloatAt parses the text under path as a float. The error is non-nil only
// for present but malformed text.
func FloatAt(el *etree.Element, path string) (float64, bool, error) {
	s, ok := Token(el, path)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// FormatFloat writes v in its shortest form ("40" rather than "40.0").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
