package camt

import (
	"encoding/xml"
	"io"
	"strings"
)

// node is one element of a fully decoded document. XMLName.Space holds the
// resolved namespace URI rather than the prefix used in the source.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []*node    `xml:",any"`
}

// decode reads a whole document into memory and returns its root element.
func decode(r io.Reader) (*node, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, formatErrorf("decode xml: %v", err)
	}
	return &root, nil
}

func (n *node) text() string {
	return strings.TrimSpace(n.Content)
}

// attr returns the value of the unqualified attribute name, or "".
func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
