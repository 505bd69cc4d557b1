package iso19115_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/iso19115"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

const testSchema = "https://metadata-resources.data.bas.ac.uk/bas-metadata-generator-configuration-schemas/v2/iso-19115-1-v4.json"

func ptr[T any](v T) *T { return &v }

func dateField(s string) dates.DateField {
	d, err := dates.DecodeDateString(s)
	if err != nil {
		panic(err)
	}
	return dates.Field(d)
}

var bas = iso19115.Contact{
	Organisation: &iso19115.Party{Name: "British Antarctic Survey", Href: "https://ror.org/01rhff309", Title: "ror"},
	Phone:        "+44 (0)1223 221400",
	Address: &iso19115.Address{
		DeliveryPoint:      "British Antarctic Survey, High Cross, Madingley Road",
		City:               "Cambridge",
		AdministrativeArea: "Cambridgeshire",
		PostalCode:         "CB3 0ET",
		Country:            "United Kingdom",
	},
	Email:          "magic@bas.ac.uk",
	OnlineResource: &iso19115.OnlineResource{Href: "https://www.bas.ac.uk/team/magic", Title: "MAGIC", Description: "General information", Function: "information"},
}

func withRoles(c iso19115.Contact, roles ...string) iso19115.Contact {
	c.Role = roles
	return c
}

func minimalConfig() *iso19115.Config {
	return &iso19115.Config{
		Schema: testSchema,
		Metadata: iso19115.Metadata{
			Language:     "eng",
			CharacterSet: "utf8",
			Contacts:     []iso19115.Contact{withRoles(bas, "pointOfContact")},
			DateStamp:    dates.NewDate(2014, 6, 30),
		},
		Identification: iso19115.Identification{
			Title:    iso19115.Anchor{Value: "Test Record"},
			Dates:    iso19115.Dates{"creation": dateField("2014-06-30")},
			Abstract: "Test Record for ISO 19115 metadata standard (no profile) with required properties only.",
		},
	}
}

func completeConfig() *iso19115.Config {
	individual := iso19115.Contact{
		Individual: &iso19115.Party{Name: "Watson, Constance", Href: "https://sandbox.orcid.org/0000-0001-8373-6934", Title: "orcid"},
		Email:      "conwat@bas.ac.uk",
	}
	thesaurus := &iso19115.Citation{
		Title: iso19115.Anchor{Value: "General Multilingual Environmental Thesaurus - INSPIRE themes", Href: "http://www.eionet.europa.eu/gemet/inspire_themes", Title: "General Multilingual Environmental Thesaurus - INSPIRE themes"},
		Dates: iso19115.Dates{"publication": dateField("2008-06-01")},
		Edition: "4.1.2",
		Contact: ptr(withRoles(iso19115.Contact{
			Organisation:   &iso19115.Party{Name: "European Environment Information and Observation Network (EIONET), European Environment Agency (EEA)"},
			Email:          "helpdesk@eionet.europa.eu",
			OnlineResource: &iso19115.OnlineResource{Href: "https://www.eionet.europa.eu/gemet/en/themes/", Title: "General Multilingual Environmental Thesaurus (GEMET) themes", Function: "information"},
		}, "publisher")),
	}

	cfg := minimalConfig()
	cfg.FileIdentifier = "b1a7d1b5-c419-41e7-9178-b1ffd76d5371"
	cfg.HierarchyLevel = "dataset"
	cfg.Metadata.Contacts = []iso19115.Contact{withRoles(bas, "pointOfContact", "publisher")}
	cfg.Metadata.DateStamp = dates.NewDate(2018, 10, 8)
	cfg.Metadata.Maintenance = &iso19115.Maintenance{MaintenanceFrequency: "asNeeded", MaintenanceNote: "Reviewed annually"}
	cfg.Metadata.MetadataStandard = &iso19115.MetadataStandard{Name: "ISO 19115-2 Geographic Information - Metadata - Part 2: Extensions for Imagery and Gridded Data", Version: "ISO 19115-2:2009(E)"}
	cfg.ReferenceSystemInfo = &iso19115.ReferenceSystemInfo{
		Authority: &iso19115.Citation{
			Title: iso19115.Anchor{Value: "European Petroleum Survey Group (EPSG) Geodetic Parameter Registry"},
			Dates: iso19115.Dates{"publication": dateField("2008-11-12")},
			Contact: ptr(withRoles(iso19115.Contact{
				Organisation: &iso19115.Party{Name: "European Petroleum Survey Group"},
				Email:        "EPSGadministrator@iogp.org",
			}, "publisher")),
		},
		Code:    iso19115.Anchor{Value: "urn:ogc:def:crs:EPSG::3031", Href: "http://www.opengis.net/def/crs/EPSG/0/3031"},
		Version: "6.18.3",
	}

	id := &cfg.Identification
	id.Title = iso19115.Anchor{Value: "Test Record", Href: "https://data.bas.ac.uk/items/b1a7d1b5"}
	id.Dates = iso19115.Dates{
		"creation":    dateField("2014-06-30"),
		"publication": dateField("2018"),
		"revision":    dateField("2018-03"),
		"released":    {Date: dates.NewDateTime(time.Date(2018, 10, 8, 14, 40, 44, 0, time.UTC))},
	}
	id.Edition = "2"
	id.Series = &iso19115.Series{Name: "Test Series", Page: "3", Edition: "1"}
	id.Identifiers = []iso19115.Identifier{
		{Identifier: "b1a7d1b5-c419-41e7-9178-b1ffd76d5371", Href: "https://data.bas.ac.uk/items/b1a7d1b5", Namespace: "data.bas.ac.uk"},
		{Identifier: "10.5285/b1a7d1b5", Href: "https://doi.org/10.5285/b1a7d1b5", Namespace: "doi"},
	}
	id.OtherCitationDetails = "Produced by the Mapping and Geographic Information Centre"
	id.Purpose = "To test the library"
	id.Status = "completed"
	id.Contacts = []iso19115.Contact{
		withRoles(individual, "author", "pointOfContact"),
		withRoles(bas, "publisher", "distributor"),
		withRoles(iso19115.Contact{Organisation: &iso19115.Party{Name: "Polar Data Centre"}}, "distributor"),
	}
	id.Maintenance = &iso19115.Maintenance{MaintenanceFrequency: "biannually", DateOfNextUpdate: ptr(dates.NewDate(2019, 1, 1))}
	id.GraphicOverviews = []iso19115.GraphicOverview{{Identifier: "overview", Description: "Overview", Href: "https://example.com/overview.png", MimeType: "image/png"}}
	id.Keywords = []iso19115.KeywordSet{
		{
			Terms:     []iso19115.Keyword{{Term: "Atmospheric conditions", Href: "https://www.eionet.europa.eu/gemet/en/inspire-theme/ac"}},
			Type:      "theme",
			Thesaurus: thesaurus,
		},
		{Terms: []iso19115.Keyword{{Term: "Antarctica"}, {Term: "Polar"}}, Type: "place"},
	}
	id.Constraints = []iso19115.Constraint{
		{Type: iso19115.ConstraintAccess, RestrictionCode: "otherRestrictions", InspireLimitationsOnPublicAccess: "noLimitations"},
		{Type: iso19115.ConstraintAccess, RestrictionCode: "unrestricted", Statement: "Open access", Href: "https://example.com/access"},
		{Type: iso19115.ConstraintUsage, RestrictionCode: "license", CopyrightLicence: &iso19115.CopyrightLicence{
			Code:      "OGL-UK-3.0",
			Statement: "This information is licensed under the Open Government Licence v3.0. To view this licence, visit https://www.nationalarchives.gov.uk/doc/open-government-licence/",
			Href:      "http://www.nationalarchives.gov.uk/doc/open-government-licence/version/3/",
		}},
		{Type: iso19115.ConstraintUsage, RestrictionCode: "otherRestrictions", RequiredCitation: &iso19115.RequiredCitation{
			Statement: `Cite this information as "Watson, C. (2018). Test Record [Data set]."`,
			Href:      "https://doi.org/10.5285/b1a7d1b5",
		}},
		{Type: iso19115.ConstraintUsage, Statement: "Not to be used for navigation"},
	}
	id.Aggregations = []iso19115.Aggregation{
		{Identifier: iso19115.Identifier{Identifier: "collection-1", Href: "https://data.bas.ac.uk/collections/1", Namespace: "data.bas.ac.uk"}, AssociationType: "largerWorkCitation", InitiativeType: "collection"},
	}
	id.SpatialRepresentationType = "textTable"
	id.SpatialResolution = ptr(1000000)
	id.Language = "eng"
	id.CharacterSet = "utf8"
	id.Topics = []string{"environment", "climatologyMeteorologyAtmosphere"}
	id.Extents = []iso19115.Extent{{
		Identifier: "bounding",
		Geographic: &iso19115.GeographicExtent{BoundingBox: iso19115.BoundingBox{WestLongitude: -45.61521, EastLongitude: -27.04976, SouthLatitude: -68.1511, NorthLatitude: -54.30761}},
		Temporal:   &iso19115.TemporalExtent{Period: iso19115.Period{Start: ptr(dateField("2018-03-14")), End: ptr(dateField("2018-09-14T12:00:00+00:00"))}},
		Vertical:   &iso19115.VerticalExtent{Minimum: 20, Maximum: 1542.5, CRS: "http://www.opengis.net/def/crs/EPSG/0/5714"},
	}}
	id.SupplementalInformation = "It is recommended that careful attention be paid to the contents of any data."
	id.Lineage = &iso19115.Lineage{
		Statement: "Data was collected by survey.",
		ProcessSteps: []iso19115.ProcessStep{{
			Description: "Digitised",
			Rationale:   "Conversion",
			Date:        ptr(dates.NewDateTime(time.Date(2018, 3, 1, 9, 0, 0, 0, time.UTC))),
			Processors:  []iso19115.Contact{withRoles(individual, "processor")},
			Sources: []iso19115.Source{{
				Description: "Field notes",
				SourceSteps: []iso19115.ProcessStep{{Description: "Transcribed"}},
			}},
		}},
		Sources: []iso19115.Source{{
			Description: "Original survey",
			Citation:    &iso19115.Citation{Title: iso19115.Anchor{Value: "Survey 1"}, Dates: iso19115.Dates{"creation": dateField("2017")}},
		}},
	}
	id.Measures = []iso19115.Measure{{
		Code:          "Conformity_001",
		Href:          "https://inspire.ec.europa.eu/id/ats/metadata/2.0/datasets-and-series",
		Title:         "Conformity",
		Specification: iso19115.Citation{Title: iso19115.Anchor{Value: "INSPIRE Metadata Regulation"}, Dates: iso19115.Dates{"publication": dateField("2008-12-04")}},
		Explanation:   "See the referenced specification",
		Pass:          true,
	}}

	cfg.Distribution = []iso19115.DistributionOption{
		{
			Format:         &iso19115.Format{Format: "GeoJSON", Href: "https://www.iana.org/assignments/media-types/application/geo+json", Version: "1.0"},
			TransferOption: &iso19115.TransferOption{Size: &iso19115.Size{Unit: "kB", Magnitude: 40}, OnlineResource: iso19115.OnlineResource{Href: "https://example.com/data.geojson", Title: "GeoJSON", Function: "download"}},
		},
		{Format: &iso19115.Format{Format: "CSV"}},
		{TransferOption: &iso19115.TransferOption{OnlineResource: iso19115.OnlineResource{Href: "https://example.com/order", Function: "order"}}},
	}
	return cfg
}

func encode(t *testing.T, cfg *iso19115.Config) *etree.Element {
	t.Helper()
	ns := iso19115.Namespaces()
	root := element.NewRoot(ns, "gmd:MD_Metadata")
	require.NoError(t, iso19115.EncodeRecord(element.NewContext(ns), root, cfg))
	return root
}

func roundTrip(t *testing.T, cfg *iso19115.Config) *iso19115.Config {
	t.Helper()
	ns := iso19115.Namespaces()
	data, err := element.Serialize(ns, encode(t, cfg))
	require.NoError(t, err)

	parsed, err := element.Parse(ns, data)
	require.NoError(t, err)
	out, err := iso19115.DecodeRecord(parsed, cfg.Schema)
	require.NoError(t, err)
	return out
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  *iso19115.Config
	}{
		{"minimal", minimalConfig()},
		{"complete", completeConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.cfg)
			if diff := cmp.Diff(tt.cfg, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_MinimalRecord(t *testing.T) {
	root := encode(t, minimalConfig())

	titles := root.FindElements("gmd:identificationInfo/gmd:MD_DataIdentification/gmd:citation/gmd:CI_Citation/gmd:title/gco:CharacterString")
	require.Len(t, titles, 1)
	assert.Equal(t, "Test Record", titles[0].Text())
	assert.Nil(t, root.FindElement("gmd:distributionInfo"))
	assert.Nil(t, root.FindElement("gmd:dataQualityInfo"))
}

func TestEncode_RootChildOrder(t *testing.T) {
	root := encode(t, completeConfig())

	var got []string
	for _, c := range root.ChildElements() {
		if len(got) == 0 || got[len(got)-1] != c.Tag {
			got = append(got, c.Tag)
		}
	}
	want := []string{
		"fileIdentifier", "language", "characterSet", "hierarchyLevel", "contact",
		"dateStamp", "metadataStandardName", "metadataStandardVersion",
		"referenceSystemInfo", "identificationInfo", "distributionInfo",
		"dataQualityInfo", "metadataMaintenance",
	}
	assert.Equal(t, want, got)
}

func TestEncode_MultiRoleContact(t *testing.T) {
	cfg := minimalConfig()
	cfg.Identification.Contacts = []iso19115.Contact{{
		Organisation: &iso19115.Party{Name: "X"},
		Role:         []string{"pointOfContact", "distributor"},
	}}

	root := encode(t, cfg)
	parties := append(
		root.FindElements("gmd:identificationInfo/gmd:MD_DataIdentification/gmd:pointOfContact/gmd:CI_ResponsibleParty"),
		root.FindElements("gmd:distributionInfo/gmd:MD_Distribution/gmd:distributor/gmd:MD_Distributor/gmd:distributorContact/gmd:CI_ResponsibleParty")...,
	)
	assert.Len(t, parties, 2)

	got := roundTrip(t, cfg)
	assert.Equal(t, cfg.Identification.Contacts, got.Identification.Contacts)
}

func TestEncode_PartialDate(t *testing.T) {
	cfg := minimalConfig()
	cfg.Identification.Dates = iso19115.Dates{"creation": dateField("2018")}

	root := encode(t, cfg)
	date := root.FindElement("gmd:identificationInfo/gmd:MD_DataIdentification/gmd:citation/gmd:CI_Citation/gmd:date/gmd:CI_Date/gmd:date/gco:Date")
	require.NotNil(t, date)
	assert.Equal(t, "2018", date.Text())

	got := roundTrip(t, cfg).Identification.Dates["creation"]
	assert.Equal(t, dates.PrecisionYear, got.Date.Precision)
	assert.Equal(t, 2018, got.Date.Time.Year())
}

func TestEncode_CitationRoles(t *testing.T) {
	cfg := minimalConfig()
	cfg.Identification.Keywords = []iso19115.KeywordSet{{
		Terms: []iso19115.Keyword{{Term: "x"}},
		Thesaurus: &iso19115.Citation{
			Title:   iso19115.Anchor{Value: "Thesaurus"},
			Contact: ptr(withRoles(bas, "publisher", "author")),
		},
	}}

	ns := iso19115.Namespaces()
	err := iso19115.EncodeRecord(element.NewContext(ns), element.NewRoot(ns, "gmd:MD_Metadata"), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mdlib.ErrCitationRoles))
}

func TestDecode_UnparsableDateStamp(t *testing.T) {
	ns := iso19115.Namespaces()
	data, err := element.Serialize(ns, encode(t, minimalConfig()))
	require.NoError(t, err)
	data = []byte(strings.Replace(string(data), "<gco:Date>2014-06-30</gco:Date>\n  </gmd:dateStamp>", "<gco:Date>30/06/2014</gco:Date>\n  </gmd:dateStamp>", 1))

	parsed, err := element.Parse(ns, data)
	require.NoError(t, err)
	_, err = iso19115.DecodeRecord(parsed, testSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Datestamp could not be parsed as an ISO date value")
	assert.True(t, errors.Is(err, mdlib.ErrInvalidDate))
}

func TestEncode_CodeListRejection(t *testing.T) {
	cfg := minimalConfig()
	cfg.Identification.Status = "nearlyDone"

	root := encode(t, cfg)
	assert.Nil(t, root.FindElement("gmd:identificationInfo/gmd:MD_DataIdentification/gmd:status"))
}

func TestEncode_CopyrightCodeOnly(t *testing.T) {
	cfg := minimalConfig()
	cfg.Identification.Constraints = []iso19115.Constraint{{
		Type:             iso19115.ConstraintUsage,
		RestrictionCode:  "license",
		CopyrightLicence: &iso19115.CopyrightLicence{Code: "OGL-UK-3.0"},
	}}

	got := roundTrip(t, cfg).Identification.Constraints
	require.Len(t, got, 1)
	assert.Equal(t, iso19115.Licences["OGL-UK-3.0"], *got[0].CopyrightLicence)
}

type stubResolver struct {
	text string
	err  error
	got  string
}

func (s *stubResolver) Resolve(_ context.Context, doi string) (string, error) {
	s.got = doi
	return s.text, s.err
}

func TestResolveCitations(t *testing.T) {
	cfg := minimalConfig()
	cfg.Identification.Constraints = []iso19115.Constraint{{
		Type:             iso19115.ConstraintUsage,
		RestrictionCode:  "otherRestrictions",
		RequiredCitation: &iso19115.RequiredCitation{DOI: "https://doi.org/10.5285/abc"},
	}}

	t.Run("unresolved", func(t *testing.T) {
		ns := iso19115.Namespaces()
		err := iso19115.EncodeRecord(element.NewContext(ns), element.NewRoot(ns, "gmd:MD_Metadata"), cfg)
		assert.True(t, errors.Is(err, mdlib.ErrUnresolvedCitation))
	})

	t.Run("resolved", func(t *testing.T) {
		resolver := &stubResolver{text: "Watson, C. (2018). Test.\n"}
		resolved, err := iso19115.ResolveCitations(context.Background(), cfg, resolver)
		require.NoError(t, err)

		assert.Equal(t, "https://doi.org/10.5285/abc", resolver.got)
		assert.Equal(t, &iso19115.RequiredCitation{
			Statement: `Cite this information as "Watson, C. (2018). Test."`,
			Href:      "https://doi.org/10.5285/abc",
		}, resolved.Identification.Constraints[0].RequiredCitation)
		assert.Equal(t, "https://doi.org/10.5285/abc", cfg.Identification.Constraints[0].RequiredCitation.DOI, "input must not be modified")

		got := roundTrip(t, resolved)
		assert.Equal(t, resolved.Identification.Constraints, got.Identification.Constraints)
	})

	t.Run("lookup failure", func(t *testing.T) {
		_, err := iso19115.ResolveCitations(context.Background(), cfg, &stubResolver{err: mdlib.ErrCitationLookup})
		assert.True(t, errors.Is(err, mdlib.ErrCitationLookup))
	})
}

func TestRoundTrip_KeepsTextWhitespace(t *testing.T) {
	const text = "  Indented abstract.\n\nSecond paragraph.\n"

	tests := []struct {
		name string
		edit func(cfg *iso19115.Config)
	}{
		{"abstract", func(cfg *iso19115.Config) { cfg.Identification.Abstract = text }},
		{"anchored title", func(cfg *iso19115.Config) {
			cfg.Identification.Title = iso19115.Anchor{Value: text, Href: "https://example.com/item"}
		}},
		{"lineage statement", func(cfg *iso19115.Config) {
			cfg.Identification.Lineage = &iso19115.Lineage{Statement: text}
		}},
		{"constraint statement", func(cfg *iso19115.Config) {
			cfg.Identification.Constraints = []iso19115.Constraint{{Type: iso19115.ConstraintUsage, Statement: text}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.edit(cfg)

			got := roundTrip(t, cfg)
			if diff := cmp.Diff(cfg, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_ProcessStepDate(t *testing.T) {
	tests := []struct {
		name     string
		date     dates.Date
		wantText string
		want     dates.Date
	}{
		{
			name:     "date",
			date:     dates.NewDate(2018, 3, 1),
			wantText: "2018-03-01T00:00:00",
			want:     dates.NewDate(2018, 3, 1),
		},
		{
			name:     "zoned datetime",
			date:     dates.NewDateTime(time.Date(2018, 3, 1, 9, 0, 0, 0, time.UTC)),
			wantText: "2018-03-01T09:00:00+00:00",
			want:     dates.NewDateTime(time.Date(2018, 3, 1, 9, 0, 0, 0, time.UTC)),
		},
		{
			name:     "year widens to first day",
			date:     dateField("2018").Date,
			wantText: "2018-01-01T00:00:00",
			want:     dates.NewDate(2018, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.Identification.Lineage = &iso19115.Lineage{
				Statement:    "Data was collected by survey.",
				ProcessSteps: []iso19115.ProcessStep{{Description: "Digitised", Date: ptr(tt.date)}},
			}

			root := encode(t, cfg)
			wrapper := root.FindElement("gmd:dataQualityInfo/gmd:DQ_DataQuality/gmd:lineage/gmd:LI_Lineage/gmd:processStep/gmd:LI_ProcessStep/gmd:dateTime")
			require.NotNil(t, wrapper)
			require.Len(t, wrapper.ChildElements(), 1)
			assert.Equal(t, "gco:DateTime", wrapper.ChildElements()[0].FullTag())
			assert.Equal(t, tt.wantText, wrapper.ChildElements()[0].Text())

			got := roundTrip(t, cfg).Identification.Lineage.ProcessSteps[0].Date
			require.NotNil(t, got)
			assert.Empty(t, cmp.Diff(tt.want, *got))
		})
	}
}

func TestRoundTrip_AccessConstraints(t *testing.T) {
	tests := []struct {
		name   string
		in     iso19115.Constraint
		marker string
	}{
		{"bare", iso19115.Constraint{Type: iso19115.ConstraintAccess}, "missing"},
		{"href only", iso19115.Constraint{Type: iso19115.ConstraintAccess, Href: "https://example.com/access"}, "missing"},
		{"statement without code", iso19115.Constraint{Type: iso19115.ConstraintAccess, Statement: "Embargoed"}, "missing"},
		{"code", iso19115.Constraint{Type: iso19115.ConstraintAccess, RestrictionCode: "restricted"}, ""},
		{"inspire", iso19115.Constraint{Type: iso19115.ConstraintAccess, RestrictionCode: "otherRestrictions", InspireLimitationsOnPublicAccess: "noLimitations"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.Identification.Constraints = []iso19115.Constraint{tt.in}

			root := encode(t, cfg)
			access := root.FindElement("gmd:identificationInfo/gmd:MD_DataIdentification/gmd:resourceConstraints/gmd:MD_LegalConstraints/gmd:accessConstraints")
			require.NotNil(t, access)
			assert.Equal(t, tt.marker, access.SelectAttrValue("gco:nilReason", ""))

			got := roundTrip(t, cfg).Identification.Constraints
			assert.Equal(t, []iso19115.Constraint{tt.in}, got)
		})
	}
}

func TestDecode_DistributorContactOrder(t *testing.T) {
	party := func(name string, roles ...string) iso19115.Contact {
		return iso19115.Contact{Organisation: &iso19115.Party{Name: name}, Role: roles}
	}

	tests := []struct {
		name string
		in   []iso19115.Contact
		want []iso19115.Contact
	}{
		{
			name: "distributor role last",
			in:   []iso19115.Contact{party("A", "pointOfContact", "distributor"), party("B", "pointOfContact")},
			want: []iso19115.Contact{party("A", "pointOfContact", "distributor"), party("B", "pointOfContact")},
		},
		{
			name: "distributor role first moves after other roles",
			in:   []iso19115.Contact{party("A", "distributor", "pointOfContact")},
			want: []iso19115.Contact{party("A", "pointOfContact", "distributor")},
		},
		{
			name: "distributor only contact moves after other contacts",
			in:   []iso19115.Contact{party("A", "distributor"), party("B", "pointOfContact")},
			want: []iso19115.Contact{party("B", "pointOfContact"), party("A", "distributor")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.Identification.Contacts = tt.in

			got := roundTrip(t, cfg).Identification.Contacts
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_TemporalExtentIDs(t *testing.T) {
	period := &iso19115.TemporalExtent{Period: iso19115.Period{Start: ptr(dateField("2018-03-14"))}}
	cfg := minimalConfig()
	cfg.Identification.Extents = []iso19115.Extent{
		{Identifier: "bounding", Temporal: period},
		{Identifier: "survey", Temporal: period},
		{Identifier: "", Temporal: period},
	}

	root := encode(t, cfg)
	var ids []string
	for _, p := range root.FindElements("gmd:identificationInfo/gmd:MD_DataIdentification/gmd:extent/gmd:EX_Extent/gmd:temporalElement/gmd:EX_TemporalExtent/gmd:extent/gml:TimePeriod") {
		ids = append(ids, p.SelectAttrValue("gml:id", ""))
	}
	assert.Equal(t, []string{"boundingTempExtent", "boundingTempExtent-survey", "boundingTempExtent-3"}, ids)

	got := roundTrip(t, cfg)
	if diff := cmp.Diff(cfg.Identification.Extents, got.Identification.Extents); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
