package iso19115

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// ResolveCitations returns a copy of cfg in which every required citation
// given as a DOI has been replaced by the citation text from resolver,
// linked to the DOI. cfg is not modified.
func ResolveCitations(ctx context.Context, cfg *Config, resolver mdlib.CitationResolver) (*Config, error) {
	out, err := cfg.Clone()
	if err != nil {
		return nil, err
	}
	for i := range out.Identification.Constraints {
		rc := out.Identification.Constraints[i].RequiredCitation
		if rc == nil || rc.DOI == "" {
			continue
		}
		text, err := resolver.Resolve(ctx, rc.DOI)
		if err != nil {
			return nil, fmt.Errorf("resolving citation %s: %w", rc.DOI, err)
		}
		out.Identification.Constraints[i].RequiredCitation = &RequiredCitation{
			Statement: fmt.Sprintf(citationTemplate, strings.TrimSpace(text)),
			Href:      rc.DOI,
		}
	}
	return out, nil
}

// ExpandLicence fills the statement and href of a copyright licence given
// only by a known code.
func ExpandLicence(l CopyrightLicence) CopyrightLicence {
	if l.Statement != "" {
		return l
	}
	if known, ok := Licences[l.Code]; ok {
		return known
	}
	return l
}

func (e *encoder) constraints(parent *etree.Element, cs []Constraint) {
	for _, c := range cs {
		e.constraint(e.Path(parent, "gmd:resourceConstraints", "gmd:MD_LegalConstraints"), c)
	}
}

// constraint writes the MD_LegalConstraints children in schema order:
// useLimitation, accessConstraints, useConstraints, otherConstraints.
func (e *encoder) constraint(legal *etree.Element, c Constraint) {
	if c.Type == ConstraintAccess {
		if c.InspireLimitationsOnPublicAccess != "" {
			legal.CreateAttr("id", constraintIDInspire)
		}
		if !restrictionCode.Encode(e.Context, legal, "gmd:accessConstraints", c.RestrictionCode) {
			// Marks the block as an access constraint when no code is given.
			legal.CreateElement("gmd:accessConstraints").CreateAttr("gco:nilReason", "missing")
		}
		switch {
		case c.InspireLimitationsOnPublicAccess != "":
			e.EncodeAnchor(legal, "gmd:otherConstraints", element.Anchor{
				Value: c.InspireLimitationsOnPublicAccess,
				Href:  inspireLimitationsBase + c.InspireLimitationsOnPublicAccess,
			})
		case c.Statement != "" || c.Href != "":
			e.EncodeAnchor(legal, "gmd:otherConstraints", element.Anchor{Value: c.Statement, Href: c.Href})
		}
		return
	}

	var limitation element.Anchor
	switch {
	case c.CopyrightLicence != nil:
		legal.CreateAttr("id", constraintIDCopyright)
		l := ExpandLicence(*c.CopyrightLicence)
		limitation = element.Anchor{Value: l.Statement, Href: l.Href}
	case c.RequiredCitation != nil:
		legal.CreateAttr("id", constraintIDCitation)
		if c.RequiredCitation.DOI != "" {
			e.fail(fmt.Errorf("%w: %s", mdlib.ErrUnresolvedCitation, c.RequiredCitation.DOI))
			return
		}
		limitation = element.Anchor{Value: c.RequiredCitation.Statement, Href: c.RequiredCitation.Href}
	default:
		limitation = element.Anchor{Value: c.Statement, Href: c.Href}
	}
	if limitation.Value != "" {
		e.EncodeAnchor(legal, "gmd:useLimitation", limitation)
	}
	restrictionCode.Encode(e.Context, legal, "gmd:useConstraints", c.RestrictionCode)
}

func (d *decoder) constraints(el *etree.Element) []Constraint {
	var out []Constraint
	for _, legal := range element.FindAll(el, "gmd:resourceConstraints/gmd:MD_LegalConstraints") {
		out = append(out, d.constraint(legal))
	}
	return out
}

func (d *decoder) constraint(legal *etree.Element) Constraint {
	id, _ := element.Attr(legal, "id")

	if id == constraintIDInspire || element.Find(legal, "gmd:accessConstraints") != nil || element.Find(legal, "gmd:otherConstraints") != nil {
		c := Constraint{Type: ConstraintAccess}
		c.RestrictionCode, _ = restrictionCode.DecodeAt(legal, "gmd:accessConstraints")
		other, _ := element.DecodeAnchorAt(legal, "gmd:otherConstraints")
		if id == constraintIDInspire {
			c.InspireLimitationsOnPublicAccess = strings.TrimPrefix(other.Href, inspireLimitationsBase)
			if c.InspireLimitationsOnPublicAccess == "" {
				c.InspireLimitationsOnPublicAccess = other.Value
			}
			return c
		}
		c.Statement, c.Href = other.Value, other.Href
		return c
	}

	c := Constraint{Type: ConstraintUsage}
	c.RestrictionCode, _ = restrictionCode.DecodeAt(legal, "gmd:useConstraints")
	limitation, _ := element.DecodeAnchorAt(legal, "gmd:useLimitation")
	switch id {
	case constraintIDCopyright:
		l := CopyrightLicence{Statement: limitation.Value, Href: limitation.Href}
		if l.Href == oglHref {
			l.Code = oglCode
		}
		c.CopyrightLicence = &l
	case constraintIDCitation:
		c.RequiredCitation = &RequiredCitation{Statement: limitation.Value, Href: limitation.Href}
	default:
		c.Statement, c.Href = limitation.Value, limitation.Href
	}
	return c
}
