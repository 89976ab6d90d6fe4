/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package definition

// Builder assembles a Definition step by step.
type Builder struct {
	def *Definition
}

// Generic starts a builder for the given component type.
func Generic(typeName string) *Builder {
	return &Builder{def: &Definition{TypeName: typeName}}
}

// AddConstructorArgValue appends a constructor argument.
func (b *Builder) AddConstructorArgValue(v Value) *Builder {
	b.def.ConstructorArgs = append(b.def.ConstructorArgs, v)
	return b
}

// AddConstructorArgReference appends a constructor argument referring to another definition.
func (b *Builder) AddConstructorArgReference(name string) *Builder {
	return b.AddConstructorArgValue(Reference{Name: name})
}

// AddPropertyValue sets a property.
func (b *Builder) AddPropertyValue(name string, v Value) *Builder {
	b.def.SetProperty(name, v)
	return b
}

// AddPropertyReference sets a property referring to another definition.
func (b *Builder) AddPropertyReference(name, ref string) *Builder {
	return b.AddPropertyValue(name, Reference{Name: ref})
}

// SetRole sets the definition role.
func (b *Builder) SetRole(r Role) *Builder {
	b.def.Role = r
	return b
}

// SetSource records where the definition came from.
func (b *Builder) SetSource(source string) *Builder {
	b.def.Source = source
	return b
}

// Definition returns the built definition.
func (b *Builder) Definition() *Definition {
	return b.def
}
