package iso19115

import "github.com/antarctica/mdlib/pkg/element"

const codeListBase = "http://standards.iso.org/ittf/PubliclyAvailableStandards/ISO_19139_Schemas/resources/codelist/gmxCodelists.xml#"

func isoCodeList(el string, values ...string) element.CodeList {
	return element.CodeList{
		Element: "gmd:" + el,
		URI:     codeListBase + el,
		Values:  values,
	}
}

var (
	languageCode = element.CodeList{
		Element: "gmd:LanguageCode",
		URI:     "http://www.loc.gov/standards/iso639-2/php/code_list.php",
		Values:  []string{"eng"},
	}

	characterSetCode = isoCodeList("MD_CharacterSetCode",
		"ucs2", "ucs4", "utf7", "utf8", "utf16",
		"8859part1", "8859part2", "8859part3", "8859part4", "8859part5",
		"8859part6", "8859part7", "8859part8", "8859part9", "8859part10",
		"8859part11", "8859part13", "8859part14", "8859part15", "8859part16",
		"jis", "shiftJIS", "eucJP", "usAscii", "ebcdic", "eucKR", "big5", "GB2312",
	)

	scopeCode = isoCodeList("MD_ScopeCode",
		"attribute", "attributeType", "collectionHardware", "collectionSession",
		"dataset", "series", "nonGeographicDataset", "dimensionGroup", "feature",
		"featureType", "propertyType", "fieldSession", "software", "service",
		"model", "tile", "initiative", "stereomate", "sensor", "platformSeries",
		"sensorSeries", "productionSeries", "transferAggregate", "otherAggregate",
		"application", "collection", "coverage", "document", "repository",
		"aggregate", "product",
	)

	roleCode = isoCodeList("CI_RoleCode",
		"resourceProvider", "custodian", "owner", "user", "distributor",
		"originator", "pointOfContact", "principalInvestigator", "processor",
		"publisher", "author", "sponsor", "coAuthor", "collaborator", "editor",
		"mediator", "rightsHolder", "contributor", "funder", "stakeholder",
	)

	// dateTypeCode values are in code list order, which is also the order
	// citation dates are written in.
	dateTypeCode = isoCodeList("CI_DateTypeCode",
		"creation", "publication", "revision", "expiry", "lastUpdate",
		"lastRevision", "nextUpdate", "unavailable", "inForce", "adopted",
		"deprecated", "superseded", "validityBegins", "validityExpires",
		"released", "distribution",
	)

	progressCode = isoCodeList("MD_ProgressCode",
		"completed", "historicalArchive", "obsolete", "onGoing", "planned",
		"required", "underDevelopment", "final", "pending", "retired",
		"superseded", "tentative", "valid", "accepted", "notAccepted",
		"withdrawn", "proposed", "deprecated",
	)

	maintenanceFrequencyCode = isoCodeList("MD_MaintenanceFrequencyCode",
		"continual", "daily", "weekly", "fortnightly", "monthly", "quarterly",
		"biannually", "annually", "asNeeded", "irregular", "notPlanned", "unknown",
	)

	keywordTypeCode = isoCodeList("MD_KeywordTypeCode",
		"discipline", "place", "stratum", "temporal", "theme", "dataCentre",
		"featureType", "instrument", "platform", "process", "project",
		"service", "product", "subTopicCategory",
	)

	restrictionCode = isoCodeList("MD_RestrictionCode",
		"copyright", "patent", "patentPending", "trademark", "license",
		"intellectualPropertyRights", "restricted", "otherRestrictions",
		"unrestricted", "licenceUnrestricted", "licenceEndUser",
		"licenceDistributor", "private", "statutory", "confidential",
		"sensitiveButUnclassified", "in-confidence",
	)

	associationTypeCode = isoCodeList("DS_AssociationTypeCode",
		"crossReference", "largerWorkCitation", "partOfSeamlessDatabase",
		"source", "stereoMate", "isComposedOf", "collectiveTitle", "series",
		"dependency", "revisionOf",
	)

	initiativeTypeCode = isoCodeList("DS_InitiativeTypeCode",
		"campaign", "collection", "exercise", "experiment", "investigation",
		"mission", "sensor", "operation", "platform", "process", "program",
		"project", "study", "task", "trial",
	)

	spatialRepresentationTypeCode = isoCodeList("MD_SpatialRepresentationTypeCode",
		"vector", "grid", "textTable", "tin", "stereoModel", "video",
	)

	onlineFunctionCode = isoCodeList("CI_OnLineFunctionCode",
		"download", "information", "offlineAccess", "order", "search",
		"completeMetadata", "browseGraphic", "upload", "emailService",
		"browsing", "fileAccess",
	)
)

// topicCategories is the MD_TopicCategoryCode enumeration. Topics are an
// XML enumeration rather than a code list so carry no codeList attributes.
var topicCategories = []string{
	"farming", "biota", "boundaries", "climatologyMeteorologyAtmosphere",
	"economy", "elevation", "environment", "geoscientificInformation",
	"health", "imageryBaseMapsEarthCover", "intelligenceMilitary",
	"inlandWaters", "location", "oceans", "planningCadastre", "society",
	"structure", "transportation", "utilitiesCommunication",
}

const (
	oglHref      = "http://www.nationalarchives.gov.uk/doc/open-government-licence/version/3/"
	oglCode      = "OGL-UK-3.0"
	oglStatement = "This information is licensed under the Open Government Licence v3.0. To view this licence, visit https://www.nationalarchives.gov.uk/doc/open-government-licence/"

	inspireLimitationsBase = "http://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/"

	constraintIDCopyright = "copyright"
	constraintIDCitation  = "citation"
	constraintIDInspire   = "InspireLimitationsOnPublicAccess"

	citationTemplate = "Cite this information as \"%s\""

	distributionIDPrefix = "bml-"
	formatIDSuffix       = "-fmt"
	transferIDSuffix     = "-tfo"

	temporalExtentID = "boundingTempExtent"
)

// Licences maps known licence codes to their statement and href.
var Licences = map[string]CopyrightLicence{
	oglCode: {Code: oglCode, Statement: oglStatement, Href: oglHref},
}

// DateTypes returns the CI_DateTypeCode values in code list order.
func DateTypes() []string {
	return append([]string(nil), dateTypeCode.Values...)
}
