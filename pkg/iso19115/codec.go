package iso19115

import (
	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// encoder writes configuration into an element tree. The first error is
// kept and later writes continue so the tree is always well formed.
type encoder struct {
	element.Context
	err error
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// decoder reads configuration from a canonicalised element tree. Absent
// optional elements are reported through presence flags; present but
// malformed values set the sticky error.
type decoder struct {
	err error
}

func (d *decoder) fail(message string, err error) {
	if d.err == nil {
		d.err = &mdlib.DecodeError{Message: message, Err: err}
	}
}

// date appends <tag><gco:Date|gco:DateTime>...</></tag>.
func (e *encoder) date(parent *etree.Element, tag string, d dates.Date) {
	wrapper := e.Child(parent, tag)
	e.dateInto(wrapper, d)
}

func (e *encoder) dateInto(wrapper *etree.Element, d dates.Date) {
	name := "gco:Date"
	if d.HasTime {
		name = "gco:DateTime"
	}
	e.TextChild(wrapper, name, dates.EncodeDateString(d))
}

// date reads the gco:Date or gco:DateTime held by wrapper. field names the
// value in the error raised for unparsable text.
func (d *decoder) date(wrapper *etree.Element, field string) (dates.Date, bool) {
	if wrapper == nil {
		return dates.Date{}, false
	}
	text, ok := element.Token(wrapper, "gco:Date")
	if !ok {
		text, ok = element.Token(wrapper, "gco:DateTime")
	}
	if !ok {
		return dates.Date{}, false
	}
	v, err := dates.DecodeDateString(text)
	if err != nil {
		d.fail(field+" could not be parsed as an ISO date value", err)
		return dates.Date{}, false
	}
	return v, true
}

func (d *decoder) float(el *etree.Element, path, field string) (float64, bool) {
	v, ok, err := element.FloatAt(el, path)
	if err != nil {
		d.fail(field+" could not be parsed as a number", err)
		return 0, false
	}
	return v, ok
}

func (e *encoder) characterStringIf(parent *etree.Element, tag, value string) {
	if value != "" {
		e.CharacterString(parent, tag, value)
	}
}

func charString(el *etree.Element, path string) string {
	s, _ := element.CharacterStringAt(el, path)
	return s
}

func partyAnchor(p *Party) element.Anchor {
	return element.Anchor{Value: p.Name, Href: p.Href, Title: p.Title}
}

func anchorParty(a element.Anchor) *Party {
	return &Party{Name: a.Value, Href: a.Href, Title: a.Title}
}
