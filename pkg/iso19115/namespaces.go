package iso19115

import "github.com/antarctica/mdlib/pkg/namespaces"

// Namespace URIs of the ISO 19139 family.
const (
	NamespaceGMD   = "http://www.isotc211.org/2005/gmd"
	NamespaceGCO   = "http://www.isotc211.org/2005/gco"
	NamespaceGMX   = "http://www.isotc211.org/2005/gmx"
	NamespaceGML   = "http://www.opengis.net/gml/3.2"
	NamespaceSRV   = "http://www.isotc211.org/2005/srv"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	NamespaceGMI   = "http://www.isotc211.org/2005/gmi"
)

const schemaBase = "https://schemas.opengis.net/iso/19139/20070417/"

// Namespaces returns the ISO 19139 namespace table. extra entries (such as
// gmi for ISO 19115-2) are declared after the shared ones.
func Namespaces(extra ...namespaces.Namespace) *namespaces.Registry {
	entries := []namespaces.Namespace{
		{Prefix: "gmd", URI: NamespaceGMD, SchemaLocation: schemaBase + "gmd/gmd.xsd"},
		{Prefix: "gco", URI: NamespaceGCO, SchemaLocation: schemaBase + "gco/gco.xsd"},
		{Prefix: "gmx", URI: NamespaceGMX, SchemaLocation: schemaBase + "gmx/gmx.xsd"},
		{Prefix: "gml", URI: NamespaceGML, SchemaLocation: "https://schemas.opengis.net/gml/3.2.1/gml.xsd"},
		{Prefix: "srv", URI: NamespaceSRV, SchemaLocation: schemaBase + "srv/1.0/srv.xsd"},
		{Prefix: "xlink", URI: NamespaceXLink, SchemaLocation: "https://schemas.opengis.net/xlink/1.0.0/xlinks.xsd"},
		{Prefix: "xsi", URI: namespaces.XSI},
	}
	return namespaces.New("", append(entries, extra...)...)
}
