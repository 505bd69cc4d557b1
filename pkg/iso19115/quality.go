package iso19115

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
)

const defaultScope = "dataset"

// quality writes gmd:dataQualityInfo when the record has a lineage or
// measures. The scope level follows the record's hierarchy level.
func (e *encoder) quality(root *etree.Element, cfg *Config) {
	id := cfg.Identification
	if id.Lineage == nil && len(id.Measures) == 0 {
		return
	}
	dq := e.Path(root, "gmd:dataQualityInfo", "gmd:DQ_DataQuality")

	level := cfg.HierarchyLevel
	if level == "" {
		level = defaultScope
	}
	scopeCode.Encode(e.Context, e.Path(dq, "gmd:scope", "gmd:DQ_Scope"), "gmd:level", level)

	for _, m := range id.Measures {
		e.measure(dq, m)
	}

	if l := id.Lineage; l != nil {
		lineage := e.Path(dq, "gmd:lineage", "gmd:LI_Lineage")
		e.characterStringIf(lineage, "gmd:statement", l.Statement)
		for _, step := range l.ProcessSteps {
			e.processStep(lineage, "gmd:processStep", step)
		}
		for _, src := range l.Sources {
			e.source(lineage, "gmd:source", src)
		}
	}
}

func (e *encoder) measure(dq *etree.Element, m Measure) {
	report := e.Path(dq, "gmd:report", "gmd:DQ_DomainConsistency")
	rs := e.Path(report, "gmd:measureIdentification", "gmd:RS_Identifier")
	e.EncodeAnchor(rs, "gmd:code", element.Anchor{Value: m.Code, Href: m.Href, Title: m.Title})

	result := e.Path(report, "gmd:result", "gmd:DQ_ConformanceResult")
	e.citation(result, "gmd:specification", m.Specification)
	e.CharacterString(result, "gmd:explanation", m.Explanation)
	e.Boolean(result, "gmd:pass", m.Pass)
}

func (e *encoder) processStep(parent *etree.Element, tag string, step ProcessStep) {
	ps := e.Path(parent, tag, "gmd:LI_ProcessStep")
	e.CharacterString(ps, "gmd:description", step.Description)
	e.characterStringIf(ps, "gmd:rationale", step.Rationale)
	if step.Date != nil {
		e.TextChild(e.Child(ps, "gmd:dateTime"), "gco:DateTime", stepDateTime(*step.Date))
	}
	e.contacts(ps, "gmd:processor", step.Processors)
	for _, src := range step.Sources {
		e.source(ps, "gmd:source", src)
	}
}

func (e *encoder) source(parent *etree.Element, tag string, src Source) {
	li := e.Path(parent, tag, "gmd:LI_Source")
	e.characterStringIf(li, "gmd:description", src.Description)
	if src.Citation != nil {
		e.citation(li, "gmd:sourceCitation", *src.Citation)
	}
	for _, step := range src.SourceSteps {
		e.processStep(li, "gmd:sourceStep", step)
	}
}

func (d *decoder) quality(root *etree.Element) (*Lineage, []Measure) {
	dq := element.Find(root, "gmd:dataQualityInfo/gmd:DQ_DataQuality")
	if dq == nil {
		return nil, nil
	}

	var measures []Measure
	for _, report := range element.FindAll(dq, "gmd:report/gmd:DQ_DomainConsistency") {
		measures = append(measures, d.measure(report))
	}

	lin := element.Find(dq, "gmd:lineage/gmd:LI_Lineage")
	if lin == nil {
		return nil, measures
	}
	l := &Lineage{Statement: charString(lin, "gmd:statement")}
	for _, ps := range element.FindAll(lin, "gmd:processStep/gmd:LI_ProcessStep") {
		l.ProcessSteps = append(l.ProcessSteps, d.processStep(ps))
	}
	for _, li := range element.FindAll(lin, "gmd:source/gmd:LI_Source") {
		l.Sources = append(l.Sources, d.source(li))
	}
	return l, measures
}

func (d *decoder) measure(report *etree.Element) Measure {
	var m Measure
	code, _ := element.DecodeAnchorAt(report, "gmd:measureIdentification/gmd:RS_Identifier/gmd:code")
	m.Code, m.Href, m.Title = code.Value, code.Href, code.Title

	result := element.Find(report, "gmd:result/gmd:DQ_ConformanceResult")
	m.Specification, _ = d.citation(result, "gmd:specification")
	m.Explanation = charString(result, "gmd:explanation")
	if s, ok := element.Token(result, "gmd:pass/gco:Boolean"); ok {
		pass, err := strconv.ParseBool(strings.ToLower(s))
		if err != nil {
			d.fail("Measure pass could not be parsed as a boolean", err)
		}
		m.Pass = pass
	}
	return m
}

func (d *decoder) processStep(ps *etree.Element) ProcessStep {
	step := ProcessStep{
		Description: charString(ps, "gmd:description"),
		Rationale:   charString(ps, "gmd:rationale"),
	}
	if v, ok := d.date(element.Find(ps, "gmd:dateTime"), "Process step date"); ok {
		v = stepDate(v)
		step.Date = &v
	}
	step.Processors = d.contacts(ps, "gmd:processor")
	for _, li := range element.FindAll(ps, "gmd:source/gmd:LI_Source") {
		step.Sources = append(step.Sources, d.source(li))
	}
	return step
}

func (d *decoder) source(li *etree.Element) Source {
	src := Source{Description: charString(li, "gmd:description")}
	if c, ok := d.citation(li, "gmd:sourceCitation"); ok {
		src.Citation = &c
	}
	for _, ps := range element.FindAll(li, "gmd:sourceStep/gmd:LI_ProcessStep") {
		src.SourceSteps = append(src.SourceSteps, d.processStep(ps))
	}
	return src
}

// stepDateTime writes a process step date as an xs:dateTime, the only form
// gmd:dateTime admits. Dates widen to unzoned midnight.
func stepDateTime(d dates.Date) string {
	if d.HasTime {
		return dates.EncodeDateString(d)
	}
	return dates.EncodeDateString(d.WithPrecision(dates.PrecisionNone)) + "T00:00:00"
}

// stepDate reverses stepDateTime: an unzoned midnight reads back as a date.
func stepDate(d dates.Date) dates.Date {
	t := d.Time
	if !d.HasTime || d.Zoned || t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return d
	}
	return dates.NewDate(t.Year(), t.Month(), t.Day())
}
