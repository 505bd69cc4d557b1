package iso19115

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// citation writes <tag><gmd:CI_Citation>.
func (e *encoder) citation(parent *etree.Element, tag string, c Citation) {
	ci := e.Path(parent, tag, "gmd:CI_Citation")

	e.EncodeAnchor(ci, "gmd:title", c.Title)
	e.dates(ci, c.Dates)
	e.characterStringIf(ci, "gmd:edition", c.Edition)
	e.identifiers(ci, "gmd:identifier", c.Identifiers)

	if c.Contact != nil {
		if n := len(c.Contact.Role); n != 1 {
			e.fail(fmt.Errorf("%w: citation %q has a contact with %d roles", mdlib.ErrCitationRoles, c.Title.Value, n))
		} else {
			e.responsibleParty(e.Child(ci, "gmd:citedResponsibleParty"), *c.Contact)
		}
	}

	if s := c.Series; s != nil {
		series := e.Path(ci, "gmd:series", "gmd:CI_Series")
		e.characterStringIf(series, "gmd:name", s.Name)
		e.characterStringIf(series, "gmd:issueIdentification", s.Edition)
		e.characterStringIf(series, "gmd:page", s.Page)
	}

	e.characterStringIf(ci, "gmd:otherCitationDetails", c.OtherCitationDetails)
}

func (d *decoder) citation(el *etree.Element, path string) (Citation, bool) {
	ci := element.Find(el, path+"/gmd:CI_Citation")
	if ci == nil {
		return Citation{}, false
	}

	var c Citation
	c.Title, _ = element.DecodeAnchorAt(ci, "gmd:title")
	c.Dates = d.dates(ci)
	c.Edition = charString(ci, "gmd:edition")
	c.Identifiers = d.identifiers(ci, "gmd:identifier")

	if party := element.Find(ci, "gmd:citedResponsibleParty/gmd:CI_ResponsibleParty"); party != nil {
		contact := d.responsibleParty(party)
		c.Contact = &contact
	}

	if series := element.Find(ci, "gmd:series/gmd:CI_Series"); series != nil {
		s := Series{
			Name:    charString(series, "gmd:name"),
			Edition: charString(series, "gmd:issueIdentification"),
			Page:    charString(series, "gmd:page"),
		}
		if s != (Series{}) {
			c.Series = &s
		}
	}

	c.OtherCitationDetails = charString(ci, "gmd:otherCitationDetails")
	return c, true
}

// dates writes one gmd:date per date type, in code list order.
func (e *encoder) dates(ci *etree.Element, ds Dates) {
	for _, dateType := range dateTypeCode.Values {
		f, ok := ds[dateType]
		if !ok {
			continue
		}
		date := e.Path(ci, "gmd:date", "gmd:CI_Date")
		e.date(date, "gmd:date", f.Date)
		dateTypeCode.Encode(e.Context, date, "gmd:dateType", dateType)
	}
}

func (d *decoder) dates(ci *etree.Element) Dates {
	var out Dates
	for _, date := range element.FindAll(ci, "gmd:date/gmd:CI_Date") {
		dateType, ok := dateTypeCode.DecodeAt(date, "gmd:dateType")
		if !ok {
			continue
		}
		v, ok := d.date(element.Find(date, "gmd:date"), "Citation date")
		if !ok {
			continue
		}
		if out == nil {
			out = make(Dates)
		}
		out[dateType] = dates.Field(v)
	}
	return out
}

func (e *encoder) identifiers(parent *etree.Element, tag string, ids []Identifier) {
	for _, id := range ids {
		e.identifier(parent, tag, id)
	}
}

func (e *encoder) identifier(parent *etree.Element, tag string, id Identifier) {
	rs := e.Path(parent, tag, "gmd:RS_Identifier")
	e.EncodeAnchor(rs, "gmd:code", element.Anchor{Value: id.Identifier, Href: id.Href})
	e.characterStringIf(rs, "gmd:codeSpace", id.Namespace)
}

func (d *decoder) identifiers(el *etree.Element, path string) []Identifier {
	var out []Identifier
	for _, rs := range element.FindAll(el, path+"/gmd:RS_Identifier") {
		if id, ok := d.identifierAt(rs); ok {
			out = append(out, id)
		}
	}
	return out
}

func (d *decoder) identifierAt(rs *etree.Element) (Identifier, bool) {
	code, ok := element.DecodeAnchorAt(rs, "gmd:code")
	if !ok {
		return Identifier{}, false
	}
	return Identifier{
		Identifier: code.Value,
		Href:       code.Href,
		Namespace:  charString(rs, "gmd:codeSpace"),
	}, true
}
