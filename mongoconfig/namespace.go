/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongoconfig

import "github.com/suparena/mapperconfig/xmlconfig"

// Namespace is the XML namespace of the mongo configuration elements.
const Namespace = "http://suparena.com/schema/mongo"

// ElementMappingConverter is the local name handled by ConverterParser.
const ElementMappingConverter = "mapping-converter"

// NewNamespaceHandler returns the handler for Namespace.
func NewNamespaceHandler() xmlconfig.NamespaceHandler {
	return xmlconfig.Parsers{
		ElementMappingConverter: NewConverterParser(),
	}
}
