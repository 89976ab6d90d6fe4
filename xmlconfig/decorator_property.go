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

// PropertyNamespace is the shortcut namespace for setting bean properties
// as attributes: p:max-size="10" or p:mongo-ref="mongo".
const PropertyNamespace = "http://suparena.com/schema/p"

const refSuffix = "-ref"

// PropertyDecorator turns property namespace attributes and elements into
// properties. <p:precision>6</p:precision> is the element form of
// p:precision="6".
type PropertyDecorator struct{}

// DecorateAttribute sets one property on the holder's definition.
func (PropertyDecorator) DecorateAttribute(attr etree.Attr, holder *definition.Holder, pc *ParserContext) (*definition.Holder, error) {
	setShortcut(holder, attr.Key, attr.Value)
	pc.Logger.Debug("Applied property shortcut.", "bean", holder.Name, "attribute", attr.Key)
	return holder, nil
}

// DecorateElement sets the property named by el's local name from its text.
// Nested elements are not supported.
func (PropertyDecorator) DecorateElement(el *etree.Element, holder *definition.Holder, pc *ParserContext) (*definition.Holder, error) {
	if len(el.ChildElements()) > 0 {
		return holder, pc.Error(fmt.Sprintf("<%s> must contain text only", el.FullTag()), el)
	}
	setShortcut(holder, el.Tag, el.Text())
	pc.Logger.Debug("Applied property shortcut.", "bean", holder.Name, "element", el.FullTag())
	return holder, nil
}

// setShortcut sets a literal property, or a reference when key ends in -ref.
func setShortcut(holder *definition.Holder, key, value string) {
	if strings.HasSuffix(key, refSuffix) {
		name := propertyName(strings.TrimSuffix(key, refSuffix))
		holder.Definition.SetProperty(name, definition.Reference{Name: strings.TrimSpace(value)})
		return
	}
	holder.Definition.SetProperty(propertyName(key), definition.Literal{Value: value})
}

// propertyName converts an attribute name like "max-size" into "maxSize".
func propertyName(attrName string) string {
	parts := strings.Split(attrName, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
