package route

import "github.com/antarctica/mdlib/pkg/namespaces"

// RTZ namespace URIs.
const (
	NamespaceRTZ10 = "http://www.cirm.org/RTZ/1/0"
	NamespaceRTZ11 = "http://www.cirm.org/RTZ/1/1"
)

// Namespaces returns the table for an RTZ document whose default
// namespace is uri. Elements are built and queried with the rtz prefix.
func Namespaces(uri, schemaLocation string) *namespaces.Registry {
	return namespaces.New("rtz",
		namespaces.Namespace{Prefix: "rtz", URI: uri, SchemaLocation: schemaLocation},
		namespaces.Namespace{Prefix: "xsi", URI: namespaces.XSI},
	)
}
