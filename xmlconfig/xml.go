/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xmlconfig

import (
	"strings"

	"github.com/beevik/etree"
)

// Attr returns the value of an unprefixed attribute, or "" when absent.
func Attr(el *etree.Element, key string) string {
	v, _ := LookupAttr(el, key)
	return v
}

// LookupAttr returns the value of an unprefixed attribute and whether it is present.
func LookupAttr(el *etree.Element, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasText reports whether s holds anything besides whitespace.
func HasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ChildElements returns the direct children of el with the given local name,
// in document order, whatever their namespace prefix.
func ChildElements(el *etree.Element, localName string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == localName {
			out = append(out, c)
		}
	}
	return out
}

// NamespaceURI resolves the namespace bound to prefix at el by walking the
// in-scope xmlns declarations. The empty prefix resolves the default namespace.
func NamespaceURI(el *etree.Element, prefix string) string {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if prefix == "" && a.Space == "" && a.Key == "xmlns" {
				return a.Value
			}
			if prefix != "" && a.Space == "xmlns" && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

// ElementNamespace returns the namespace URI of el itself.
func ElementNamespace(el *etree.Element) string {
	return NamespaceURI(el, el.Space)
}

// Path renders the location of el as "/root/child/grandchild", using the
// prefixed tag names as written.
func Path(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var parts []string
	for e := el; e != nil; e = e.Parent() {
		if e.Tag == "" {
			continue
		}
		parts = append(parts, e.FullTag())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}
