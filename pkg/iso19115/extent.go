package iso19115

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
)

// extents writes each extent as gmd:extent/gmd:EX_Extent, children in
// schema order: geographic, temporal, vertical.
func (e *encoder) extents(parent *etree.Element, extents []Extent) {
	for i, x := range extents {
		ex := e.Path(parent, "gmd:extent", "gmd:EX_Extent")
		ex.CreateAttr("id", x.Identifier)

		if g := x.Geographic; g != nil {
			bbox := e.Path(ex, "gmd:geographicElement", "gmd:EX_GeographicBoundingBox")
			e.Decimal(bbox, "gmd:westBoundLongitude", g.BoundingBox.WestLongitude)
			e.Decimal(bbox, "gmd:eastBoundLongitude", g.BoundingBox.EastLongitude)
			e.Decimal(bbox, "gmd:southBoundLatitude", g.BoundingBox.SouthLatitude)
			e.Decimal(bbox, "gmd:northBoundLatitude", g.BoundingBox.NorthLatitude)
		}

		if t := x.Temporal; t != nil {
			period := e.Path(ex, "gmd:temporalElement", "gmd:EX_TemporalExtent", "gmd:extent", "gml:TimePeriod")
			period.CreateAttr("gml:id", temporalID(i, x.Identifier))
			if t.Period.Start != nil {
				e.TextChild(period, "gml:beginPosition", dates.EncodeDateString(t.Period.Start.Date))
			}
			if t.Period.End != nil {
				e.TextChild(period, "gml:endPosition", dates.EncodeDateString(t.Period.End.Date))
			}
		}

		if v := x.Vertical; v != nil {
			vert := e.Path(ex, "gmd:verticalElement", "gmd:EX_VerticalExtent")
			e.Real(vert, "gmd:minimumValue", v.Minimum)
			e.Real(vert, "gmd:maximumValue", v.Maximum)
			crs := e.Child(vert, "gmd:verticalCRS")
			if v.CRS != "" {
				crs.CreateAttr("xlink:href", v.CRS)
			}
		}
	}
}

func (d *decoder) extents(el *etree.Element) []Extent {
	var out []Extent
	for _, ex := range element.FindAll(el, "gmd:extent/gmd:EX_Extent") {
		var x Extent
		x.Identifier, _ = element.Attr(ex, "id")

		if bbox := element.Find(ex, "gmd:geographicElement/gmd:EX_GeographicBoundingBox"); bbox != nil {
			var b BoundingBox
			b.WestLongitude, _ = d.float(bbox, "gmd:westBoundLongitude/gco:Decimal", "West bounding longitude")
			b.EastLongitude, _ = d.float(bbox, "gmd:eastBoundLongitude/gco:Decimal", "East bounding longitude")
			b.SouthLatitude, _ = d.float(bbox, "gmd:southBoundLatitude/gco:Decimal", "South bounding latitude")
			b.NorthLatitude, _ = d.float(bbox, "gmd:northBoundLatitude/gco:Decimal", "North bounding latitude")
			x.Geographic = &GeographicExtent{BoundingBox: b}
		}

		if period := element.Find(ex, "gmd:temporalElement/gmd:EX_TemporalExtent/gmd:extent/gml:TimePeriod"); period != nil {
			var p Period
			p.Start = d.position(period, "gml:beginPosition", "Temporal extent begin position")
			p.End = d.position(period, "gml:endPosition", "Temporal extent end position")
			x.Temporal = &TemporalExtent{Period: p}
		}

		if vert := element.Find(ex, "gmd:verticalElement/gmd:EX_VerticalExtent"); vert != nil {
			var v VerticalExtent
			v.Minimum, _ = d.float(vert, "gmd:minimumValue/gco:Real", "Vertical extent minimum")
			v.Maximum, _ = d.float(vert, "gmd:maximumValue/gco:Real", "Vertical extent maximum")
			v.CRS, _ = element.Attr(element.Find(vert, "gmd:verticalCRS"), "xlink:href")
			x.Vertical = &v
		}

		out = append(out, x)
	}
	return out
}

// temporalID returns the gml:id of the i'th temporal extent. The first
// keeps the bare id; later ones are suffixed so ids stay unique.
func temporalID(i int, identifier string) string {
	switch {
	case i == 0:
		return temporalExtentID
	case identifier != "":
		return temporalExtentID + "-" + identifier
	default:
		return temporalExtentID + "-" + strconv.Itoa(i+1)
	}
}

func (d *decoder) position(period *etree.Element, tag, field string) *dates.DateField {
	text, ok := element.Token(period, tag)
	if !ok {
		return nil
	}
	v, err := dates.DecodeDateString(text)
	if err != nil {
		d.fail(field+" could not be parsed as an ISO date value", err)
		return nil
	}
	f := dates.Field(v)
	return &f
}
