/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xmlconfig

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/suparena/mapperconfig/definition"
)

// Reader walks a <beans> document and registers what it finds: plain beans
// and aliases through the delegate, custom elements through the namespace
// handler registered for their namespace.
type Reader struct {
	handlers map[string]NamespaceHandler
}

// NewReader creates a reader with no namespace handlers.
func NewReader() *Reader {
	return &Reader{handlers: make(map[string]NamespaceHandler)}
}

// RegisterNamespace binds a handler to a namespace URI, replacing any earlier one.
func (r *Reader) RegisterNamespace(namespaceURI string, h NamespaceHandler) {
	r.handlers[namespaceURI] = h
}

// ReadFile reads and registers the document at path.
func (r *Reader) ReadFile(pc *ParserContext, path string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r.Read(pc, doc)
}

// ReadBytes reads and registers the document held in data.
func (r *Reader) ReadBytes(pc *ParserContext, data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	return r.Read(pc, doc)
}

// Read registers the definitions of an already parsed document. A hard
// failure stops reading and is returned; soft problems end up in pc.Problems.
func (r *Reader) Read(pc *ParserContext, doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("configuration document has no root element")
	}
	if root.Tag != "beans" || !isBeansNamespace(ElementNamespace(root)) {
		return fmt.Errorf("configuration root must be <beans>, found <%s>", root.FullTag())
	}

	before := pc.Registry.Count()
	for _, el := range root.ChildElements() {
		if err := r.readElement(pc, el); err != nil {
			return err
		}
	}

	pc.Logger.Info("Configuration read.",
		"definitions_registered", pc.Registry.Count()-before,
		"errors", len(pc.Problems.Errors()),
		"warnings", len(pc.Problems.Warnings()))
	return nil
}

func (r *Reader) readElement(pc *ParserContext, el *etree.Element) error {
	uri := ElementNamespace(el)
	if isBeansNamespace(uri) {
		return r.readDefault(pc, el)
	}

	h, ok := r.handlers[uri]
	if !ok {
		return pc.Error(fmt.Sprintf("no namespace handler for %q", uri), el)
	}
	parser, ok := h.Parser(el.Tag)
	if !ok {
		return pc.Error(fmt.Sprintf("namespace %q has no parser for <%s>", uri, el.Tag), el)
	}
	_, err := ParseAndRegister(parser, el, pc)
	return err
}

func (r *Reader) readDefault(pc *ParserContext, el *etree.Element) error {
	switch el.Tag {
	case "bean":
		holder, err := pc.Delegate.ParseBeanElement(el, pc)
		if err != nil || holder == nil {
			return err
		}
		holder, err = pc.Delegate.DecorateIfRequired(el, holder, pc)
		if err != nil || holder == nil {
			return err
		}
		return registerHolder(pc, holder)
	case "alias":
		name := strings.TrimSpace(Attr(el, "name"))
		alias := strings.TrimSpace(Attr(el, "alias"))
		if name == "" || alias == "" {
			return pc.Error("<alias> must specify both 'name' and 'alias'", el)
		}
		if err := pc.Registry.RegisterAlias(name, alias); err != nil {
			return fmt.Errorf("registering alias %q at %s: %w", alias, Path(el), err)
		}
		return nil
	default:
		return pc.Error(fmt.Sprintf("unsupported element <%s>", el.FullTag()), el)
	}
}

func registerHolder(pc *ParserContext, holder *definition.Holder) error {
	if err := pc.Registry.Register(holder.Name, holder.Definition); err != nil {
		return fmt.Errorf("registering %q from %s: %w", holder.Name, holder.Definition.Source, err)
	}
	for _, alias := range holder.Aliases {
		if err := pc.Registry.RegisterAlias(holder.Name, alias); err != nil {
			return fmt.Errorf("registering alias %q for %q: %w", alias, holder.Name, err)
		}
	}
	pc.Logger.Debug("Registered definition.", "name", holder.Name, "type", holder.Definition.TypeName, "aliases", holder.Aliases)
	return nil
}
