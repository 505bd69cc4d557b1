package iso19115

import (
	"slices"
	"strconv"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/element"
)

// identification writes gmd:identificationInfo/gmd:MD_DataIdentification.
// Distributor contacts are written in the distribution section instead.
func (e *encoder) identification(root *etree.Element, id Identification) {
	di := e.Path(root, "gmd:identificationInfo", "gmd:MD_DataIdentification")

	e.citation(di, "gmd:citation", Citation{
		Title:                id.Title,
		Dates:                id.Dates,
		Edition:              id.Edition,
		Identifiers:          id.Identifiers,
		Series:               id.Series,
		OtherCitationDetails: id.OtherCitationDetails,
	})
	e.CharacterString(di, "gmd:abstract", id.Abstract)
	e.characterStringIf(di, "gmd:purpose", id.Purpose)
	progressCode.Encode(e.Context, di, "gmd:status", id.Status)

	points, _ := splitContacts(id.Contacts)
	e.contacts(di, "gmd:pointOfContact", points)

	if id.Maintenance != nil {
		e.maintenance(di, "gmd:resourceMaintenance", *id.Maintenance)
	}
	e.graphicOverviews(di, id.GraphicOverviews)
	e.keywords(di, id.Keywords)
	e.constraints(di, id.Constraints)
	e.aggregations(di, id.Aggregations)
	spatialRepresentationTypeCode.Encode(e.Context, di, "gmd:spatialRepresentationType", id.SpatialRepresentationType)
	if id.SpatialResolution != nil {
		fraction := e.Path(di, "gmd:spatialResolution", "gmd:MD_Resolution", "gmd:equivalentScale", "gmd:MD_RepresentativeFraction")
		e.Integer(fraction, "gmd:denominator", *id.SpatialResolution)
	}
	languageCode.Encode(e.Context, di, "gmd:language", id.Language)
	characterSetCode.Encode(e.Context, di, "gmd:characterSet", id.CharacterSet)
	for _, topic := range id.Topics {
		if slices.Contains(topicCategories, topic) {
			e.TextChild(e.Child(di, "gmd:topicCategory"), "gmd:MD_TopicCategoryCode", topic)
		}
	}
	e.extents(di, id.Extents)
	e.characterStringIf(di, "gmd:supplementalInformation", id.SupplementalInformation)
}

// identification reads the data identification section. Contacts are
// returned without the distributors held in the distribution section.
func (d *decoder) identification(root *etree.Element) Identification {
	di := element.Find(root, "gmd:identificationInfo/gmd:MD_DataIdentification")
	if di == nil {
		return Identification{}
	}

	var id Identification
	if c, ok := d.citation(di, "gmd:citation"); ok {
		id.Title = c.Title
		id.Dates = c.Dates
		id.Edition = c.Edition
		id.Identifiers = c.Identifiers
		id.Series = c.Series
		id.OtherCitationDetails = c.OtherCitationDetails
	}
	id.Abstract = charString(di, "gmd:abstract")
	id.Purpose = charString(di, "gmd:purpose")
	id.Status, _ = progressCode.DecodeAt(di, "gmd:status")
	id.Contacts = d.contacts(di, "gmd:pointOfContact")
	if m, ok := d.maintenance(di, "gmd:resourceMaintenance"); ok {
		id.Maintenance = &m
	}
	id.GraphicOverviews = d.graphicOverviews(di)
	id.Keywords = d.keywords(di)
	id.Constraints = d.constraints(di)
	id.Aggregations = d.aggregations(di)
	id.SpatialRepresentationType, _ = spatialRepresentationTypeCode.DecodeAt(di, "gmd:spatialRepresentationType")
	if s, ok := element.Token(di, "gmd:spatialResolution/gmd:MD_Resolution/gmd:equivalentScale/gmd:MD_RepresentativeFraction/gmd:denominator/gco:Integer"); ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			d.fail("Spatial resolution could not be parsed as an integer", err)
		} else {
			id.SpatialResolution = &v
		}
	}
	id.Language, _ = languageCode.DecodeAt(di, "gmd:language")
	id.CharacterSet, _ = characterSetCode.DecodeAt(di, "gmd:characterSet")
	for _, topic := range element.FindAll(di, "gmd:topicCategory/gmd:MD_TopicCategoryCode") {
		if s, ok := element.Token(topic, ""); ok {
			id.Topics = append(id.Topics, s)
		}
	}
	id.Extents = d.extents(di)
	id.SupplementalInformation = charString(di, "gmd:supplementalInformation")
	return id
}
