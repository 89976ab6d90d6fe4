/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xmlconfig

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/suparena/mapperconfig/definition"
)

// DefinitionParser turns one custom element into a primary definition.
// Parsers may register auxiliary definitions themselves; the primary one is
// registered by the caller under ResolveID.
type DefinitionParser interface {
	ResolveID(el *etree.Element) string
	// Parse returns the primary definition. A nil definition with a nil
	// error means the element was reported and skipped.
	Parse(el *etree.Element, pc *ParserContext) (*definition.Definition, error)
}

// NamespaceHandler resolves the parser for an element of its namespace.
type NamespaceHandler interface {
	Parser(localName string) (DefinitionParser, bool)
}

// Parsers is a NamespaceHandler backed by a map of local names.
type Parsers map[string]DefinitionParser

// Parser returns the parser registered for localName.
func (p Parsers) Parser(localName string) (DefinitionParser, bool) {
	parser, ok := p[localName]
	return parser, ok
}

// ParseAndRegister runs parser on el and registers the primary definition
// under the resolved identifier.
func ParseAndRegister(parser DefinitionParser, el *etree.Element, pc *ParserContext) (*definition.Holder, error) {
	def, err := parser.Parse(el, pc)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, nil
	}

	id := parser.ResolveID(el)
	if def.Source == "" {
		def.Source = Path(el)
	}
	if err := pc.Registry.Register(id, def); err != nil {
		return nil, fmt.Errorf("registering %q from %s: %w", id, Path(el), err)
	}
	pc.Logger.Debug("Registered definition.", "name", id, "type", def.TypeName, "source", def.Source)

	return &definition.Holder{Name: id, Definition: def}, nil
}
