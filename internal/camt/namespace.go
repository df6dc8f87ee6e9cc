package camt

import "strings"

// NamespacePrefix is shared by every camt.053 schema version.
const NamespacePrefix = "urn:iso:std:iso:20022:tech:xsd:camt.053.001"

// namespaceOf returns the namespace URI of the root element, or "" when the
// document is not namespaced.
func namespaceOf(root *node) string {
	return root.XMLName.Space
}

func checkNamespace(ns string) error {
	if !strings.HasPrefix(ns, NamespacePrefix) {
		return formatErrorf("cannot recognize ISO 20022 namespace %q", ns)
	}
	return nil
}
