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

const (
	// BeansNamespace is the default namespace for plain bean definitions.
	// Elements with no namespace at all are treated the same way.
	BeansNamespace = "http://suparena.com/schema/beans"

	generatedNameSeparator = "#"
)

// Decorator augments a parsed bean definition from the namespaced attributes
// and child elements of the bean element.
type Decorator interface {
	DecorateAttribute(attr etree.Attr, holder *definition.Holder, pc *ParserContext) (*definition.Holder, error)
	DecorateElement(el *etree.Element, holder *definition.Holder, pc *ParserContext) (*definition.Holder, error)
}

// Delegate parses <bean> elements into definitions and applies decorators.
type Delegate struct {
	decorators map[string]Decorator
}

// NewDelegate creates a delegate with the property namespace decorator registered.
func NewDelegate() *Delegate {
	d := &Delegate{decorators: make(map[string]Decorator)}
	d.RegisterDecorator(PropertyNamespace, PropertyDecorator{})
	return d
}

// RegisterDecorator binds a decorator to a namespace URI, replacing any earlier one.
func (d *Delegate) RegisterDecorator(namespaceURI string, dec Decorator) {
	d.decorators[namespaceURI] = dec
}

// isBeansNamespace reports whether uri is the plain bean namespace.
func isBeansNamespace(uri string) bool {
	return uri == "" || uri == BeansNamespace
}

// ParseBeanElement parses a <bean> element. A nil holder with a nil error
// means a problem was reported and the element was skipped.
func (d *Delegate) ParseBeanElement(el *etree.Element, pc *ParserContext) (*definition.Holder, error) {
	className := strings.TrimSpace(Attr(el, "class"))
	if className == "" {
		return nil, pc.Error("bean definition must specify a 'class'", el)
	}

	builder := definition.Generic(className).SetSource(Path(el))

	for _, child := range el.ChildElements() {
		// Namespaced children are left to DecorateIfRequired.
		if !isBeansNamespace(ElementNamespace(child)) {
			continue
		}
		switch child.Tag {
		case "constructor-arg":
			v, err := d.parseValueHolder(child, pc)
			if err != nil {
				return nil, err
			}
			if v != nil {
				builder.AddConstructorArgValue(v)
			}
		case "property":
			name := strings.TrimSpace(Attr(child, "name"))
			if name == "" {
				if err := pc.Error("<property> must specify a 'name'", child); err != nil {
					return nil, err
				}
				continue
			}
			v, err := d.parseValueHolder(child, pc)
			if err != nil {
				return nil, err
			}
			if v != nil {
				builder.AddPropertyValue(name, v)
			}
		default:
			pc.Warning(fmt.Sprintf("unsupported element <%s> inside <bean>", child.FullTag()), child)
		}
	}

	name, aliases := d.beanNames(el, className, pc)
	return &definition.Holder{
		Name:       name,
		Aliases:    aliases,
		Definition: builder.Definition(),
	}, nil
}

// beanNames picks the bean name from id, then the first entry of name, then
// a generated "class#n" name unused in the registry. Remaining names are aliases.
func (d *Delegate) beanNames(el *etree.Element, className string, pc *ParserContext) (string, []string) {
	id := strings.TrimSpace(Attr(el, "id"))
	aliases := strings.FieldsFunc(Attr(el, "name"), func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})

	if id == "" && len(aliases) > 0 {
		id, aliases = aliases[0], aliases[1:]
	}
	if id == "" {
		for n := 0; ; n++ {
			candidate := fmt.Sprintf("%s%s%d", className, generatedNameSeparator, n)
			if !pc.Registry.Contains(candidate) {
				id = candidate
				break
			}
		}
	}
	return id, aliases
}

// parseValueHolder reads the value of a <constructor-arg> or <property>:
// a ref or value attribute, or exactly one value element.
func (d *Delegate) parseValueHolder(el *etree.Element, pc *ParserContext) (definition.Value, error) {
	ref, hasRef := LookupAttr(el, "ref")
	value, hasValue := LookupAttr(el, "value")
	children := el.ChildElements()

	switch {
	case hasRef && hasValue:
		return nil, pc.Error(fmt.Sprintf("<%s> may specify only one of 'ref' or 'value'", el.Tag), el)
	case hasRef:
		if !HasText(ref) {
			return nil, pc.Error(fmt.Sprintf("<%s> has an empty 'ref'", el.Tag), el)
		}
		return definition.Reference{Name: strings.TrimSpace(ref)}, nil
	case hasValue:
		return definition.Literal{Value: value}, nil
	case len(children) == 1:
		return d.parseValueElement(children[0], pc)
	default:
		return nil, pc.Error(fmt.Sprintf("<%s> must specify a 'ref', a 'value', or exactly one value element", el.Tag), el)
	}
}

// parseValueElement reads <value>, <ref>, <bean>, or <list>.
func (d *Delegate) parseValueElement(el *etree.Element, pc *ParserContext) (definition.Value, error) {
	switch el.Tag {
	case "value":
		return definition.Literal{Value: el.Text()}, nil
	case "ref":
		name := strings.TrimSpace(Attr(el, "bean"))
		if name == "" {
			return nil, pc.Error("<ref> must specify a 'bean'", el)
		}
		return definition.Reference{Name: name}, nil
	case "bean":
		holder, err := d.ParseBeanElement(el, pc)
		if err != nil || holder == nil {
			return nil, err
		}
		holder, err = d.DecorateIfRequired(el, holder, pc)
		if err != nil || holder == nil {
			return nil, err
		}
		return holder.Definition, nil
	case "list":
		list := definition.List{}
		for _, item := range el.ChildElements() {
			v, err := d.parseValueElement(item, pc)
			if err != nil {
				return nil, err
			}
			if v != nil {
				list = append(list, v)
			}
		}
		return list, nil
	default:
		return nil, pc.Error(fmt.Sprintf("unsupported value element <%s>", el.FullTag()), el)
	}
}

// DecorateIfRequired passes every namespaced attribute of el, then every
// namespaced child element, to the decorator registered for its namespace.
// Attributes and elements of unknown namespaces are reported as warnings
// and left alone.
func (d *Delegate) DecorateIfRequired(el *etree.Element, holder *definition.Holder, pc *ParserContext) (*definition.Holder, error) {
	for _, attr := range el.Attr {
		if attr.Space == "" || attr.Space == "xmlns" {
			continue
		}
		uri := NamespaceURI(el, attr.Space)
		if isBeansNamespace(uri) {
			continue
		}
		dec, ok := d.decorators[uri]
		if !ok {
			pc.Warning(fmt.Sprintf("no decorator for namespace %q of attribute %s:%s", uri, attr.Space, attr.Key), el)
			continue
		}
		decorated, err := dec.DecorateAttribute(attr, holder, pc)
		if err != nil {
			return nil, fmt.Errorf("decorating %s with %s:%s: %w", holder.Name, attr.Space, attr.Key, err)
		}
		holder = decorated
	}

	for _, child := range el.ChildElements() {
		uri := ElementNamespace(child)
		if isBeansNamespace(uri) {
			continue
		}
		dec, ok := d.decorators[uri]
		if !ok {
			pc.Warning(fmt.Sprintf("no decorator for namespace %q of element <%s>", uri, child.FullTag()), child)
			continue
		}
		decorated, err := dec.DecorateElement(child, holder, pc)
		if err != nil {
			return nil, fmt.Errorf("decorating %s with <%s>: %w", holder.Name, child.FullTag(), err)
		}
		holder = decorated
	}
	return holder, nil
}
