/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package definition

import (
	"fmt"
	"sort"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindLiteral Kind = iota
	KindReference
	KindList
	KindSet
	KindDefinition
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindReference:
		return "reference"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindDefinition:
		return "definition"
	default:
		return "unknown"
	}
}

// Value is anything that can be passed as a constructor argument or property.
type Value interface {
	Kind() Kind
}

// Literal is a plain string value, converted by whoever instantiates the component.
type Literal struct {
	Value string
}

func (Literal) Kind() Kind { return KindLiteral }

func (l Literal) String() string { return l.Value }

// Reference points at another definition by name. It is resolved when the
// graph is instantiated, never while parsing.
type Reference struct {
	Name string
}

func (Reference) Kind() Kind { return KindReference }

func (r Reference) String() string { return fmt.Sprintf("ref(%s)", r.Name) }

// List is an ordered collection of values.
type List []Value

func (List) Kind() Kind { return KindList }

// StringSet is an unordered set of strings.
type StringSet struct {
	items map[string]struct{}
}

// NewStringSet creates a set holding the given items.
func NewStringSet(items ...string) *StringSet {
	s := &StringSet{items: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (*StringSet) Kind() Kind { return KindSet }

// Add inserts an item; duplicates are ignored.
func (s *StringSet) Add(item string) {
	s.items[item] = struct{}{}
}

// Contains reports whether item is in the set.
func (s *StringSet) Contains(item string) bool {
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items.
func (s *StringSet) Len() int {
	return len(s.items)
}

// Sorted returns the items in lexical order.
func (s *StringSet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
