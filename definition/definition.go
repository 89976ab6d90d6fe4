/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package definition

// Role tells tooling whether a definition was written by the user or
// contributed by a namespace handler.
type Role int

const (
	RoleApplication Role = iota
	RoleInfrastructure
)

func (r Role) String() string {
	if r == RoleInfrastructure {
		return "infrastructure"
	}
	return "application"
}

// PropertyValue is a single named property of a definition.
type PropertyValue struct {
	Name  string
	Value Value
}

// Definition describes how to build one managed component. Nothing here is
// ever instantiated by this module.
type Definition struct {
	// TypeName is the component type the container should construct.
	TypeName string
	// Role marks user-declared versus handler-contributed definitions.
	Role Role
	// Source is the path of the element this definition was parsed from.
	Source string
	// ConstructorArgs are passed in order.
	ConstructorArgs []Value
	// Properties are applied in order after construction.
	Properties []PropertyValue
}

// Kind lets a definition be used inline as a value.
func (d *Definition) Kind() Kind { return KindDefinition }

// Property returns the value of the named property, if set.
func (d *Definition) Property(name string) (Value, bool) {
	for _, pv := range d.Properties {
		if pv.Name == name {
			return pv.Value, true
		}
	}
	return nil, false
}

// SetProperty sets a property, replacing an earlier value with the same name.
func (d *Definition) SetProperty(name string, v Value) {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			d.Properties[i].Value = v
			return
		}
	}
	d.Properties = append(d.Properties, PropertyValue{Name: name, Value: v})
}

// ConstructorArg returns the i-th constructor argument, if present.
func (d *Definition) ConstructorArg(i int) (Value, bool) {
	if i < 0 || i >= len(d.ConstructorArgs) {
		return nil, false
	}
	return d.ConstructorArgs[i], true
}

// Holder pairs a definition with the name and aliases it was declared under.
type Holder struct {
	Name       string
	Aliases    []string
	Definition *Definition
}
