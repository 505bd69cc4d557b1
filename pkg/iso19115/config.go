package iso19115

import (
	"encoding/json"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
)

// Anchor is a text value with an optional link.
type Anchor = element.Anchor

// Config is the ISO 19115 record configuration.
type Config struct {
	Schema              string               `json:"$schema"`
	FileIdentifier      string               `json:"file_identifier,omitempty"`
	HierarchyLevel      string               `json:"hierarchy_level,omitempty"`
	Metadata            Metadata             `json:"metadata"`
	ReferenceSystemInfo *ReferenceSystemInfo `json:"reference_system_info,omitempty"`
	Identification      Identification       `json:"identification"`
	Distribution        []DistributionOption `json:"distribution,omitempty"`
}

// Metadata describes the record itself rather than the resource.
type Metadata struct {
	Language         string            `json:"language"`
	CharacterSet     string            `json:"character_set"`
	Contacts         []Contact         `json:"contacts"`
	DateStamp        dates.Date        `json:"date_stamp"`
	Maintenance      *Maintenance      `json:"maintenance,omitempty"`
	MetadataStandard *MetadataStandard `json:"metadata_standard,omitempty"`
}

type MetadataStandard struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

type Maintenance struct {
	MaintenanceFrequency string      `json:"maintenance_frequency"`
	DateOfNextUpdate     *dates.Date `json:"date_of_next_update,omitempty"`
	MaintenanceNote      string      `json:"maintenance_note,omitempty"`
}

type ReferenceSystemInfo struct {
	Authority *Citation `json:"authority,omitempty"`
	Code      Anchor    `json:"code"`
	Version   string    `json:"version,omitempty"`
}

// Identification describes the resource. Citation properties of the
// resource are flattened into it.
type Identification struct {
	Title                     Anchor            `json:"title"`
	Dates                     Dates             `json:"dates"`
	Edition                   string            `json:"edition,omitempty"`
	Series                    *Series           `json:"series,omitempty"`
	Identifiers               []Identifier      `json:"identifiers,omitempty"`
	OtherCitationDetails      string            `json:"other_citation_details,omitempty"`
	Abstract                  string            `json:"abstract"`
	Purpose                   string            `json:"purpose,omitempty"`
	Status                    string            `json:"status,omitempty"`
	Contacts                  []Contact         `json:"contacts,omitempty"`
	Maintenance               *Maintenance      `json:"maintenance,omitempty"`
	GraphicOverviews          []GraphicOverview `json:"graphic_overviews,omitempty"`
	Keywords                  []KeywordSet      `json:"keywords,omitempty"`
	Constraints               []Constraint      `json:"constraints,omitempty"`
	Aggregations              []Aggregation     `json:"aggregations,omitempty"`
	SpatialRepresentationType string            `json:"spatial_representation_type,omitempty"`
	SpatialResolution         *int              `json:"spatial_resolution,omitempty"`
	Language                  string            `json:"language,omitempty"`
	CharacterSet              string            `json:"character_set,omitempty"`
	Topics                    []string          `json:"topics,omitempty"`
	Extents                   []Extent          `json:"extents,omitempty"`
	SupplementalInformation   string            `json:"supplemental_information,omitempty"`
	Lineage                   *Lineage          `json:"lineage,omitempty"`
	Measures                  []Measure         `json:"measures,omitempty"`
}

// Dates maps a CI_DateTypeCode value to a date.
type Dates map[string]dates.DateField

// Citation is a CI_Citation.
type Citation struct {
	Title                Anchor       `json:"title"`
	Dates                Dates        `json:"dates,omitempty"`
	Edition              string       `json:"edition,omitempty"`
	Identifiers          []Identifier `json:"identifiers,omitempty"`
	Contact              *Contact     `json:"contact,omitempty"`
	Series               *Series      `json:"series,omitempty"`
	OtherCitationDetails string       `json:"other_citation_details,omitempty"`
}

type Series struct {
	Name    string `json:"name,omitempty"`
	Page    string `json:"page,omitempty"`
	Edition string `json:"edition,omitempty"`
}

type Identifier struct {
	Identifier string `json:"identifier"`
	Href       string `json:"href,omitempty"`
	Namespace  string `json:"namespace,omitempty"`
}

// Contact is a CI_ResponsibleParty holding one or more roles.
type Contact struct {
	Individual     *Party          `json:"individual,omitempty"`
	Organisation   *Party          `json:"organisation,omitempty"`
	Position       string          `json:"position,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	Email          string          `json:"email,omitempty"`
	OnlineResource *OnlineResource `json:"online_resource,omitempty"`
	Role           []string        `json:"role,omitempty"`
}

// Party names an individual or organisation.
type Party struct {
	Name  string `json:"name"`
	Href  string `json:"href,omitempty"`
	Title string `json:"title,omitempty"`
}

type Address struct {
	DeliveryPoint      string `json:"delivery_point,omitempty"`
	City               string `json:"city,omitempty"`
	AdministrativeArea string `json:"administrative_area,omitempty"`
	PostalCode         string `json:"postal_code,omitempty"`
	Country            string `json:"country,omitempty"`
}

type OnlineResource struct {
	Href        string `json:"href"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Function    string `json:"function,omitempty"`
}

type GraphicOverview struct {
	Identifier  string `json:"identifier"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href"`
	MimeType    string `json:"mime_type,omitempty"`
}

type KeywordSet struct {
	Terms     []Keyword `json:"terms"`
	Type      string    `json:"type,omitempty"`
	Thesaurus *Citation `json:"thesaurus,omitempty"`
}

type Keyword struct {
	Term string `json:"term"`
	Href string `json:"href,omitempty"`
}

// Constraint types.
const (
	ConstraintAccess = "access"
	ConstraintUsage  = "usage"
)

// Constraint is an access or usage MD_LegalConstraints.
type Constraint struct {
	Type                             string            `json:"type"`
	RestrictionCode                  string            `json:"restriction_code,omitempty"`
	Statement                        string            `json:"statement,omitempty"`
	Href                             string            `json:"href,omitempty"`
	CopyrightLicence                 *CopyrightLicence `json:"copyright_licence,omitempty"`
	RequiredCitation                 *RequiredCitation `json:"required_citation,omitempty"`
	InspireLimitationsOnPublicAccess string            `json:"inspire_limitations_on_public_access,omitempty"`
}

type CopyrightLicence struct {
	Code      string `json:"code,omitempty"`
	Statement string `json:"statement,omitempty"`
	Href      string `json:"href,omitempty"`
}

// RequiredCitation is either a statement (with optional href) or a DOI to
// be resolved into a statement before encoding.
type RequiredCitation struct {
	Statement string `json:"statement,omitempty"`
	Href      string `json:"href,omitempty"`
	DOI       string `json:"doi,omitempty"`
}

type Aggregation struct {
	Identifier      Identifier `json:"identifier"`
	AssociationType string     `json:"association_type"`
	InitiativeType  string     `json:"initiative_type,omitempty"`
}

type Extent struct {
	Identifier string            `json:"identifier"`
	Geographic *GeographicExtent `json:"geographic,omitempty"`
	Vertical   *VerticalExtent   `json:"vertical,omitempty"`
	Temporal   *TemporalExtent   `json:"temporal,omitempty"`
}

type GeographicExtent struct {
	BoundingBox BoundingBox `json:"bounding_box"`
}

type BoundingBox struct {
	WestLongitude float64 `json:"west_longitude"`
	EastLongitude float64 `json:"east_longitude"`
	SouthLatitude float64 `json:"south_latitude"`
	NorthLatitude float64 `json:"north_latitude"`
}

type VerticalExtent struct {
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	CRS     string  `json:"crs,omitempty"`
}

type TemporalExtent struct {
	Period Period `json:"period"`
}

type Period struct {
	Start *dates.DateField `json:"start,omitempty"`
	End   *dates.DateField `json:"end,omitempty"`
}

type DistributionOption struct {
	Format         *Format         `json:"format,omitempty"`
	TransferOption *TransferOption `json:"transfer_option,omitempty"`
}

type Format struct {
	Format  string `json:"format"`
	Href    string `json:"href,omitempty"`
	Version string `json:"version,omitempty"`
}

type TransferOption struct {
	Size           *Size          `json:"size,omitempty"`
	OnlineResource OnlineResource `json:"online_resource"`
}

type Size struct {
	Unit      string  `json:"unit"`
	Magnitude float64 `json:"magnitude"`
}

type Lineage struct {
	Statement    string        `json:"statement,omitempty"`
	ProcessSteps []ProcessStep `json:"process_steps,omitempty"`
	Sources      []Source      `json:"sources,omitempty"`
}

// ProcessStep and Source nest within each other to any depth.
type ProcessStep struct {
	Description string      `json:"description"`
	Rationale   string      `json:"rationale,omitempty"`
	Date        *dates.Date `json:"date,omitempty"`
	Processors  []Contact   `json:"processors,omitempty"`
	Sources     []Source    `json:"sources,omitempty"`
}

type Source struct {
	Description string        `json:"description,omitempty"`
	Citation    *Citation     `json:"citation,omitempty"`
	SourceSteps []ProcessStep `json:"source_steps,omitempty"`
}

// Measure is a DQ_DomainConsistency report.
type Measure struct {
	Code          string   `json:"code"`
	Href          string   `json:"href,omitempty"`
	Title         string   `json:"title,omitempty"`
	Specification Citation `json:"specification"`
	Explanation   string   `json:"explanation"`
	Pass          bool     `json:"pass"`
}

// Clone returns a deep copy of c.
func (c *Config) Clone() (*Config, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var out Config
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
