package iso19115

import (
	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/element"
)

func (e *encoder) keywords(parent *etree.Element, sets []KeywordSet) {
	for _, set := range sets {
		kw := e.Path(parent, "gmd:descriptiveKeywords", "gmd:MD_Keywords")
		for _, term := range set.Terms {
			e.EncodeAnchor(kw, "gmd:keyword", element.Anchor{Value: term.Term, Href: term.Href})
		}
		keywordTypeCode.Encode(e.Context, kw, "gmd:type", set.Type)
		if set.Thesaurus != nil {
			e.citation(kw, "gmd:thesaurusName", *set.Thesaurus)
		}
	}
}

func (d *decoder) keywords(el *etree.Element) []KeywordSet {
	var out []KeywordSet
	for _, kw := range element.FindAll(el, "gmd:descriptiveKeywords/gmd:MD_Keywords") {
		var set KeywordSet
		for _, wrapper := range element.FindAll(kw, "gmd:keyword") {
			if a, ok := element.DecodeAnchor(wrapper); ok {
				set.Terms = append(set.Terms, Keyword{Term: a.Value, Href: a.Href})
			}
		}
		set.Type, _ = keywordTypeCode.DecodeAt(kw, "gmd:type")
		if thesaurus, ok := d.citation(kw, "gmd:thesaurusName"); ok {
			set.Thesaurus = &thesaurus
		}
		out = append(out, set)
	}
	return out
}

func (e *encoder) graphicOverviews(parent *etree.Element, overviews []GraphicOverview) {
	for _, g := range overviews {
		browse := e.Path(parent, "gmd:graphicOverview", "gmd:MD_BrowseGraphic")
		browse.CreateAttr("id", g.Identifier)
		e.CharacterString(browse, "gmd:fileName", g.Href)
		e.characterStringIf(browse, "gmd:fileDescription", g.Description)
		e.characterStringIf(browse, "gmd:fileType", g.MimeType)
	}
}

func (d *decoder) graphicOverviews(el *etree.Element) []GraphicOverview {
	var out []GraphicOverview
	for _, browse := range element.FindAll(el, "gmd:graphicOverview/gmd:MD_BrowseGraphic") {
		g := GraphicOverview{
			Href:        charString(browse, "gmd:fileName"),
			Description: charString(browse, "gmd:fileDescription"),
			MimeType:    charString(browse, "gmd:fileType"),
		}
		g.Identifier, _ = element.Attr(browse, "id")
		out = append(out, g)
	}
	return out
}

func (e *encoder) aggregations(parent *etree.Element, aggs []Aggregation) {
	for _, a := range aggs {
		info := e.Path(parent, "gmd:aggregationInfo", "gmd:MD_AggregateInformation")
		e.identifier(info, "gmd:aggregateDataSetIdentifier", a.Identifier)
		associationTypeCode.Encode(e.Context, info, "gmd:associationType", a.AssociationType)
		initiativeTypeCode.Encode(e.Context, info, "gmd:initiativeType", a.InitiativeType)
	}
}

func (d *decoder) aggregations(el *etree.Element) []Aggregation {
	var out []Aggregation
	for _, info := range element.FindAll(el, "gmd:aggregationInfo/gmd:MD_AggregateInformation") {
		var a Aggregation
		if rs := element.Find(info, "gmd:aggregateDataSetIdentifier/gmd:RS_Identifier"); rs != nil {
			a.Identifier, _ = d.identifierAt(rs)
		}
		a.AssociationType, _ = associationTypeCode.DecodeAt(info, "gmd:associationType")
		a.InitiativeType, _ = initiativeTypeCode.DecodeAt(info, "gmd:initiativeType")
		out = append(out, a)
	}
	return out
}

func (e *encoder) maintenance(parent *etree.Element, tag string, m Maintenance) {
	info := e.Path(parent, tag, "gmd:MD_MaintenanceInformation")
	maintenanceFrequencyCode.Encode(e.Context, info, "gmd:maintenanceAndUpdateFrequency", m.MaintenanceFrequency)
	if m.DateOfNextUpdate != nil {
		e.date(info, "gmd:dateOfNextUpdate", *m.DateOfNextUpdate)
	}
	e.characterStringIf(info, "gmd:maintenanceNote", m.MaintenanceNote)
}

func (d *decoder) maintenance(el *etree.Element, path string) (Maintenance, bool) {
	info := element.Find(el, path+"/gmd:MD_MaintenanceInformation")
	if info == nil {
		return Maintenance{}, false
	}
	var m Maintenance
	m.MaintenanceFrequency, _ = maintenanceFrequencyCode.DecodeAt(info, "gmd:maintenanceAndUpdateFrequency")
	if v, ok := d.date(element.Find(info, "gmd:dateOfNextUpdate"), "Date of next update"); ok {
		m.DateOfNextUpdate = &v
	}
	m.MaintenanceNote = charString(info, "gmd:maintenanceNote")
	return m, true
}
