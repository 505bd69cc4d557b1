package iso19115

import (
	"encoding/json"

	"github.com/beevik/etree"
	"github.com/samber/lo"

	"github.com/antarctica/mdlib/pkg/element"
)

// ExpandRoles returns one contact per role, in role order.
func ExpandRoles(contacts []Contact) []Contact {
	return lo.FlatMap(contacts, func(c Contact, _ int) []Contact {
		return lo.Map(c.Role, func(role string, _ int) Contact {
			single := c
			single.Role = []string{role}
			return single
		})
	})
}

// CondenseRoles merges contacts that differ only by role into a single
// contact listing every role. Contacts keep the order they were first
// seen in and roles keep the order they were encountered in.
func CondenseRoles(contacts []Contact) []Contact {
	var (
		out   []Contact
		index = make(map[string]int)
	)
	for _, c := range contacts {
		key := contactKey(c)
		if i, ok := index[key]; ok {
			out[i].Role = append(out[i].Role, c.Role...)
			continue
		}
		index[key] = len(out)
		c.Role = append([]string(nil), c.Role...)
		out = append(out, c)
	}
	return out
}

func contactKey(c Contact) string {
	c.Role = nil
	data, _ := json.Marshal(c)
	return string(data)
}

// contacts writes each contact role as <tag><gmd:CI_ResponsibleParty>.
func (e *encoder) contacts(parent *etree.Element, tag string, contacts []Contact) {
	for _, c := range ExpandRoles(contacts) {
		e.responsibleParty(e.Child(parent, tag), c)
	}
}

func (e *encoder) responsibleParty(wrapper *etree.Element, c Contact) {
	party := e.Child(wrapper, "gmd:CI_ResponsibleParty")

	if c.Individual != nil {
		e.EncodeAnchor(party, "gmd:individualName", partyAnchor(c.Individual))
	}
	if c.Organisation != nil {
		e.EncodeAnchor(party, "gmd:organisationName", partyAnchor(c.Organisation))
	}
	e.characterStringIf(party, "gmd:positionName", c.Position)

	if c.Phone != "" || c.Address != nil || c.Email != "" || c.OnlineResource != nil {
		info := e.Path(party, "gmd:contactInfo", "gmd:CI_Contact")
		if c.Phone != "" {
			e.CharacterString(e.Path(info, "gmd:phone", "gmd:CI_Telephone"), "gmd:voice", c.Phone)
		}
		if c.Address != nil || c.Email != "" {
			addr := e.Path(info, "gmd:address", "gmd:CI_Address")
			if a := c.Address; a != nil {
				e.characterStringIf(addr, "gmd:deliveryPoint", a.DeliveryPoint)
				e.characterStringIf(addr, "gmd:city", a.City)
				e.characterStringIf(addr, "gmd:administrativeArea", a.AdministrativeArea)
				e.characterStringIf(addr, "gmd:postalCode", a.PostalCode)
				e.characterStringIf(addr, "gmd:country", a.Country)
			}
			e.characterStringIf(addr, "gmd:electronicMailAddress", c.Email)
		}
		if c.OnlineResource != nil {
			e.onlineResource(info, "gmd:onlineResource", *c.OnlineResource)
		}
	}

	for _, role := range c.Role {
		roleCode.Encode(e.Context, party, "gmd:role", role)
	}
}

// contacts reads every CI_ResponsibleParty under el matching path and
// condenses their roles.
func (d *decoder) contacts(el *etree.Element, path string) []Contact {
	var out []Contact
	for _, party := range element.FindAll(el, path+"/gmd:CI_ResponsibleParty") {
		out = append(out, d.responsibleParty(party))
	}
	return CondenseRoles(out)
}

func (d *decoder) responsibleParty(party *etree.Element) Contact {
	var c Contact

	if a, ok := element.DecodeAnchorAt(party, "gmd:individualName"); ok {
		c.Individual = anchorParty(a)
	}
	if a, ok := element.DecodeAnchorAt(party, "gmd:organisationName"); ok {
		c.Organisation = anchorParty(a)
	}
	c.Position = charString(party, "gmd:positionName")

	if info := element.Find(party, "gmd:contactInfo/gmd:CI_Contact"); info != nil {
		c.Phone = charString(info, "gmd:phone/gmd:CI_Telephone/gmd:voice")
		if addr := element.Find(info, "gmd:address/gmd:CI_Address"); addr != nil {
			a := Address{
				DeliveryPoint:      charString(addr, "gmd:deliveryPoint"),
				City:               charString(addr, "gmd:city"),
				AdministrativeArea: charString(addr, "gmd:administrativeArea"),
				PostalCode:         charString(addr, "gmd:postalCode"),
				Country:            charString(addr, "gmd:country"),
			}
			if a != (Address{}) {
				c.Address = &a
			}
			c.Email = charString(addr, "gmd:electronicMailAddress")
		}
		if r, ok := d.onlineResource(element.Find(info, "gmd:onlineResource/gmd:CI_OnlineResource")); ok {
			c.OnlineResource = &r
		}
	}

	for _, wrapper := range element.FindAll(party, "gmd:role") {
		if role, ok := roleCode.Decode(wrapper); ok {
			c.Role = append(c.Role, role)
		}
	}
	return c
}

func (e *encoder) onlineResource(parent *etree.Element, tag string, r OnlineResource) {
	res := e.Path(parent, tag, "gmd:CI_OnlineResource")
	e.TextChild(e.Child(res, "gmd:linkage"), "gmd:URL", r.Href)
	e.characterStringIf(res, "gmd:name", r.Title)
	e.characterStringIf(res, "gmd:description", r.Description)
	onlineFunctionCode.Encode(e.Context, res, "gmd:function", r.Function)
}

func (d *decoder) onlineResource(res *etree.Element) (OnlineResource, bool) {
	if res == nil {
		return OnlineResource{}, false
	}
	r := OnlineResource{
		Title:       charString(res, "gmd:name"),
		Description: charString(res, "gmd:description"),
	}
	r.Href, _ = element.Token(res, "gmd:linkage/gmd:URL")
	r.Function, _ = onlineFunctionCode.DecodeAt(res, "gmd:function")
	return r, r != (OnlineResource{})
}
