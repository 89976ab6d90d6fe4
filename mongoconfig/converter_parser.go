/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongoconfig

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/suparena/mapperconfig/definition"
	"github.com/suparena/mapperconfig/errors"
	"github.com/suparena/mapperconfig/xmlconfig"
)

const (
	// DefaultConverterID names the converter when the element has no id.
	DefaultConverterID = "mappingConverter"

	// MappingContextName, PostProcessorName and IndexHelperName are the
	// well-known auxiliary definitions. Each is registered at most once per
	// registry; an existing registration wins.
	MappingContextName = "mappingContext"
	PostProcessorName  = "mappingContextAwareBeanPostProcessor"
	IndexHelperName    = "indexCreationHelper"

	DefaultMongoRef    = "mongo"
	DefaultTemplateRef = "mongoTemplate"
)

// Component types the produced definitions describe.
const (
	TypeMappingContext   = "mapping.MongoMappingContext"
	TypeMappingConverter = "convert.MappingMongoConverter"
	TypePostProcessor    = "mapping.MappingContextAwarePostProcessor"
	TypeIndexCreator     = "mapping.PersistentEntityIndexCreator"
)

// Attribute, element and property names.
const (
	attrID               = "id"
	attrMappingContext   = "mapping-context-ref"
	attrMongoRef         = "mongo-ref"
	attrMongoTemplateRef = "mongo-template-ref"
	attrBasePackage      = "base-package"
	attrRef              = "ref"

	elemCustomConverters = "custom-converters"
	elemConverter        = "converter"
	elemBean             = "bean"

	propInitialEntitySet  = "initialEntitySet"
	propMappingContextRef = "mappingContextBeanName"
	propMongo             = "mongo"
	propConverters        = "converters"
)

const errConverterEntry = "Element <converter> must specify either 'ref' or contain a bean definition for the converter"

// ConverterParser parses <mongo:mapping-converter> into a mapping converter
// definition and its supporting definitions.
type ConverterParser struct{}

// NewConverterParser creates a ConverterParser.
func NewConverterParser() *ConverterParser {
	return &ConverterParser{}
}

// ResolveID returns the element's id, or DefaultConverterID when blank.
func (p *ConverterParser) ResolveID(el *etree.Element) string {
	if id := strings.TrimSpace(xmlconfig.Attr(el, attrID)); id != "" {
		return id
	}
	return DefaultConverterID
}

// Parse registers the mapping context, post-processor and index helper as
// needed and returns the unregistered converter definition.
func (p *ConverterParser) Parse(el *etree.Element, pc *xmlconfig.ParserContext) (*definition.Definition, error) {
	ctxRef, err := p.mappingContextRef(el, pc)
	if err != nil {
		return nil, err
	}

	if err := p.ensurePostProcessor(el, ctxRef, pc); err != nil {
		return nil, err
	}

	converter := definition.Generic(TypeMappingConverter).
		SetSource(xmlconfig.Path(el)).
		AddConstructorArgReference(ctxRef).
		AddPropertyReference(propMongo, attrOr(el, attrMongoRef, DefaultMongoRef))

	if err := p.ensureIndexHelper(el, ctxRef, pc); err != nil {
		return nil, err
	}

	blocks := xmlconfig.ChildElements(el, elemCustomConverters)
	if len(blocks) > 1 {
		pc.Warning(fmt.Sprintf("only the first of %d <%s> blocks is used", len(blocks), elemCustomConverters), blocks[1])
	}
	if len(blocks) > 0 {
		converters, err := p.parseCustomConverters(blocks[0], pc)
		if err != nil {
			return nil, err
		}
		converter.AddPropertyValue(propConverters, converters)
	}

	return converter.Definition(), nil
}

// mappingContextRef returns the name of the mapping context the converter
// uses, registering a new one under MappingContextName when the element does
// not reference an existing one.
func (p *ConverterParser) mappingContextRef(el *etree.Element, pc *xmlconfig.ParserContext) (string, error) {
	if ref := xmlconfig.Attr(el, attrMappingContext); xmlconfig.HasText(ref) {
		return ref, nil
	}

	if pc.Registry.Contains(MappingContextName) {
		pc.Logger.Debug("Mapping context already registered, keeping it.", "name", MappingContextName)
		return MappingContextName, nil
	}

	builder := definition.Generic(TypeMappingContext).
		SetRole(definition.RoleInfrastructure).
		SetSource(xmlconfig.Path(el))

	entities, err := p.InitialEntitySet(el, pc)
	if err != nil {
		return "", err
	}
	if entities != nil {
		builder.AddPropertyValue(propInitialEntitySet, entities)
	}

	if err := register(pc, MappingContextName, builder.Definition()); err != nil {
		return "", err
	}
	return MappingContextName, nil
}

// InitialEntitySet scans the element's base-package for entity types. It
// returns nil when no base package is given and a possibly empty set otherwise.
func (p *ConverterParser) InitialEntitySet(el *etree.Element, pc *xmlconfig.ParserContext) (*definition.StringSet, error) {
	basePackage := strings.TrimSpace(xmlconfig.Attr(el, attrBasePackage))
	if basePackage == "" {
		return nil, nil
	}
	if pc.Scanner == nil {
		return nil, errors.NewScanError(basePackage, fmt.Errorf("no entity scanner configured for %s", xmlconfig.Path(el)))
	}

	names, err := pc.Scanner.FindCandidates(pc.Context, basePackage)
	if err != nil {
		if errors.IsScanFailed(err) {
			return nil, err
		}
		return nil, errors.NewScanError(basePackage, err)
	}

	set := definition.NewStringSet(names...)
	pc.Logger.Debug("Scanned entity types.", "base_package", basePackage, "entities", set.Len())
	return set, nil
}

func (p *ConverterParser) ensurePostProcessor(el *etree.Element, ctxRef string, pc *xmlconfig.ParserContext) error {
	if pc.Registry.Contains(PostProcessorName) {
		pc.Logger.Debug("Post-processor already registered, keeping it.", "name", PostProcessorName)
		return nil
	}

	def := definition.Generic(TypePostProcessor).
		SetRole(definition.RoleInfrastructure).
		SetSource(xmlconfig.Path(el)).
		AddPropertyValue(propMappingContextRef, definition.Literal{Value: ctxRef}).
		Definition()
	return register(pc, PostProcessorName, def)
}

func (p *ConverterParser) ensureIndexHelper(el *etree.Element, ctxRef string, pc *xmlconfig.ParserContext) error {
	if pc.Registry.Contains(IndexHelperName) {
		pc.Logger.Debug("Index helper already registered, keeping it.", "name", IndexHelperName)
		return nil
	}

	def := definition.Generic(TypeIndexCreator).
		SetRole(definition.RoleInfrastructure).
		SetSource(xmlconfig.Path(el)).
		AddConstructorArgReference(ctxRef).
		AddConstructorArgReference(attrOr(el, attrMongoTemplateRef, DefaultTemplateRef)).
		Definition()
	return register(pc, IndexHelperName, def)
}

func (p *ConverterParser) parseCustomConverters(block *etree.Element, pc *xmlconfig.ParserContext) (definition.List, error) {
	converters := definition.List{}
	for _, entry := range xmlconfig.ChildElements(block, elemConverter) {
		v, err := p.ParseConverterEntry(entry, pc)
		if err != nil {
			return nil, err
		}
		if v != nil {
			converters = append(converters, v)
		}
	}
	return converters, nil
}

// ParseConverterEntry resolves one <converter>: the registered definition
// named by ref, or the single inline bean. A missing ref target is returned
// as an error; an entry with neither form is reported through pc, and yields
// nothing unless the reporting policy stops loading.
func (p *ConverterParser) ParseConverterEntry(el *etree.Element, pc *xmlconfig.ParserContext) (definition.Value, error) {
	if ref := xmlconfig.Attr(el, attrRef); xmlconfig.HasText(ref) {
		// TODO: allow references to converters declared later in the document.
		def, err := pc.Registry.Get(strings.TrimSpace(ref))
		if err != nil {
			return nil, fmt.Errorf("converter at %s: %w", xmlconfig.Path(el), err)
		}
		return def, nil
	}

	beans := xmlconfig.ChildElements(el, elemBean)
	switch len(beans) {
	case 0:
		return nil, pc.Error(errConverterEntry, el)
	case 1:
	default:
		return nil, pc.Error(fmt.Sprintf("Element <converter> must contain exactly one bean definition, found %d", len(beans)), el)
	}

	holder, err := pc.Delegate.ParseBeanElement(beans[0], pc)
	if err != nil || holder == nil {
		return nil, err
	}
	holder, err = pc.Delegate.DecorateIfRequired(beans[0], holder, pc)
	if err != nil || holder == nil {
		return nil, err
	}
	return holder.Definition, nil
}

func register(pc *xmlconfig.ParserContext, name string, def *definition.Definition) error {
	if err := pc.Registry.Register(name, def); err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}
	pc.Logger.Debug("Registered definition.", "name", name, "type", def.TypeName)
	return nil
}

// attrOr returns the trimmed attribute value, or fallback when blank.
func attrOr(el *etree.Element, key, fallback string) string {
	if v := strings.TrimSpace(xmlconfig.Attr(el, key)); v != "" {
		return v
	}
	return fallback
}
