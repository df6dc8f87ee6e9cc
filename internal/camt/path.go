package camt

import (
	"encoding/xml"
	"strings"
)

// qualify turns shorthand such as "Acct/Svcr/FinInstnId/BIC" into a lookup
// path whose every step is bound to namespace ns.
func qualify(ns, spath string) []xml.Name {
	tags := strings.Split(spath, "/")
	path := make([]xml.Name, len(tags))
	for i, tag := range tags {
		path[i] = xml.Name{Space: ns, Local: tag}
	}
	return path
}

// findAll returns every element reachable from n along spath, in document order.
func (c *parseContext) findAll(n *node, spath string) []*node {
	if n == nil {
		return nil
	}
	current := []*node{n}
	for _, name := range qualify(c.ns, spath) {
		var next []*node
		for _, parent := range current {
			for _, child := range parent.Children {
				if child.XMLName == name {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

func (c *parseContext) find(n *node, spath string) *node {
	if found := c.findAll(n, spath); len(found) > 0 {
		return found[0]
	}
	return nil
}

// findFirst tries spaths in order and returns the first element present.
func (c *parseContext) findFirst(n *node, spaths ...string) *node {
	for _, spath := range spaths {
		if found := c.find(n, spath); found != nil {
			return found
		}
	}
	return nil
}

// firstText is findFirst returning the element text. ok is false when none
// of the paths resolve; a present but empty element yields "", true.
func (c *parseContext) firstText(n *node, spaths ...string) (text string, ok bool) {
	found := c.findFirst(n, spaths...)
	if found == nil {
		return "", false
	}
	return found.text(), true
}
