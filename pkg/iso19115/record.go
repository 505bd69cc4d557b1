package iso19115

import (
	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/element"
)

// EncodeRecord writes cfg under root (gmd:MD_Metadata or gmi:MI_Metadata)
// in schema order.
func EncodeRecord(ctx element.Context, root *etree.Element, cfg *Config) error {
	e := &encoder{Context: ctx}
	md := cfg.Metadata

	e.characterStringIf(root, "gmd:fileIdentifier", cfg.FileIdentifier)
	languageCode.Encode(ctx, root, "gmd:language", md.Language)
	characterSetCode.Encode(ctx, root, "gmd:characterSet", md.CharacterSet)
	scopeCode.Encode(ctx, root, "gmd:hierarchyLevel", cfg.HierarchyLevel)
	e.contacts(root, "gmd:contact", md.Contacts)
	e.date(root, "gmd:dateStamp", md.DateStamp)
	if s := md.MetadataStandard; s != nil {
		e.characterStringIf(root, "gmd:metadataStandardName", s.Name)
		e.characterStringIf(root, "gmd:metadataStandardVersion", s.Version)
	}
	if rs := cfg.ReferenceSystemInfo; rs != nil {
		e.referenceSystem(root, *rs)
	}
	e.identification(root, cfg.Identification)
	e.distribution(root, cfg)
	e.quality(root, cfg)
	if md.Maintenance != nil {
		e.maintenance(root, "gmd:metadataMaintenance", *md.Maintenance)
	}
	return e.err
}

// DecodeRecord reads a canonicalised record rooted at root. schema is
// written as the configuration's $schema.
func DecodeRecord(root *etree.Element, schema string) (*Config, error) {
	d := &decoder{}
	cfg := &Config{Schema: schema}

	cfg.FileIdentifier = charString(root, "gmd:fileIdentifier")
	cfg.Metadata.Language, _ = languageCode.DecodeAt(root, "gmd:language")
	cfg.Metadata.CharacterSet, _ = characterSetCode.DecodeAt(root, "gmd:characterSet")
	cfg.HierarchyLevel, _ = scopeCode.DecodeAt(root, "gmd:hierarchyLevel")
	cfg.Metadata.Contacts = d.contacts(root, "gmd:contact")
	if v, ok := d.date(element.Find(root, "gmd:dateStamp"), "Datestamp"); ok {
		cfg.Metadata.DateStamp = v
	}
	standard := MetadataStandard{
		Name:    charString(root, "gmd:metadataStandardName"),
		Version: charString(root, "gmd:metadataStandardVersion"),
	}
	if standard != (MetadataStandard{}) {
		cfg.Metadata.MetadataStandard = &standard
	}
	if rs, ok := d.referenceSystem(root); ok {
		cfg.ReferenceSystemInfo = &rs
	}

	cfg.Identification = d.identification(root)
	options, distributors := d.distribution(root)
	cfg.Distribution = options
	// Distributor roles follow every other role and contact.
	if len(distributors) > 0 {
		cfg.Identification.Contacts = CondenseRoles(append(ExpandRoles(cfg.Identification.Contacts), ExpandRoles(distributors)...))
	}
	cfg.Identification.Lineage, cfg.Identification.Measures = d.quality(root)

	if m, ok := d.maintenance(root, "gmd:metadataMaintenance"); ok {
		cfg.Metadata.Maintenance = &m
	}

	if d.err != nil {
		return nil, d.err
	}
	return cfg, nil
}

func (e *encoder) referenceSystem(root *etree.Element, rs ReferenceSystemInfo) {
	id := e.Path(root, "gmd:referenceSystemInfo", "gmd:MD_ReferenceSystem", "gmd:referenceSystemIdentifier", "gmd:RS_Identifier")
	if rs.Authority != nil {
		e.citation(id, "gmd:authority", *rs.Authority)
	}
	e.EncodeAnchor(id, "gmd:code", rs.Code)
	e.characterStringIf(id, "gmd:version", rs.Version)
}

func (d *decoder) referenceSystem(root *etree.Element) (ReferenceSystemInfo, bool) {
	id := element.Find(root, "gmd:referenceSystemInfo/gmd:MD_ReferenceSystem/gmd:referenceSystemIdentifier/gmd:RS_Identifier")
	if id == nil {
		return ReferenceSystemInfo{}, false
	}
	var rs ReferenceSystemInfo
	if c, ok := d.citation(id, "gmd:authority"); ok {
		rs.Authority = &c
	}
	rs.Code, _ = element.DecodeAnchorAt(id, "gmd:code")
	rs.Version = charString(id, "gmd:version")
	return rs, true
}
