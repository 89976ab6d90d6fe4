/*
Package definition models component definitions: the declarative
instructions a container follows to construct and wire one component.

A Definition holds a type name, ordered constructor arguments, and ordered
properties. Values are literals, references to other named definitions,
lists, string sets, or nested definitions:

	conv := definition.Generic("mapping.MappingMongoConverter").
	    AddConstructorArgReference("mappingContext").
	    AddPropertyReference("mongo", "mongo").
	    Definition()

Definitions are plain data. They are produced by parsers, stored in a
registry, and handed to whatever instantiates the graph.
*/
package definition
