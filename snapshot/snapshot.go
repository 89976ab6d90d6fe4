/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/suparena/mapperconfig/definition"
	"github.com/suparena/mapperconfig/registry"
)

// Snapshot is a serializable copy of a registry's contents.
type Snapshot struct {
	ID         string          `json:"id" yaml:"id"`
	Source     string          `json:"source,omitempty" yaml:"source,omitempty"`
	CapturedAt strfmt.DateTime `json:"capturedAt" yaml:"capturedAt"`
	Entries    []Entry         `json:"entries" yaml:"entries"`
}

// Entry is one registered definition.
type Entry struct {
	Name            string     `json:"name" yaml:"name"`
	Aliases         []string   `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Type            string     `json:"type" yaml:"type"`
	Role            string     `json:"role" yaml:"role"`
	Source          string     `json:"source,omitempty" yaml:"source,omitempty"`
	ConstructorArgs []any      `json:"constructorArgs,omitempty" yaml:"constructorArgs,omitempty"`
	Properties      []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Property is a named rendered value.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// Store persists snapshots.
type Store interface {
	// Save writes s, replacing any earlier snapshot with the same ID.
	Save(ctx context.Context, s *Snapshot) error
	// Load returns the snapshot with the given ID. A missing snapshot
	// yields a *errors.NotFoundError.
	Load(ctx context.Context, id string) (*Snapshot, error)
}

// FromRegistry captures every definition in reg, in registration order,
// under a fresh ID.
func FromRegistry(reg registry.Registry, source string) (*Snapshot, error) {
	s := &Snapshot{
		ID:         uuid.NewString(),
		Source:     source,
		CapturedAt: strfmt.DateTime(time.Now().UTC()),
		Entries:    make([]Entry, 0, reg.Count()),
	}

	for _, name := range reg.Names() {
		def, err := reg.Get(name)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}
		s.Entries = append(s.Entries, Entry{
			Name:            name,
			Aliases:         reg.Aliases(name),
			Type:            def.TypeName,
			Role:            def.Role.String(),
			Source:          def.Source,
			ConstructorArgs: renderArgs(def.ConstructorArgs),
			Properties:      renderProperties(def.Properties),
		})
	}
	return s, nil
}

// Entry returns the entry registered under name.
func (s *Snapshot) Entry(name string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// YAML renders the snapshot as YAML.
func (s *Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot %s to YAML: %w", s.ID, err)
	}
	return out, nil
}

// JSON renders the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot %s to JSON: %w", s.ID, err)
	}
	return out, nil
}

// Render converts a definition value into plain data: a string for a
// literal, {"ref": name} for a reference, a slice for a list, {"set": [...]}
// with sorted members for a set and {"bean": {...}} for an inline definition.
// Inline bean properties are a list of {"name", "value"} in declaration order.
func Render(v definition.Value) any {
	switch tv := v.(type) {
	case definition.Literal:
		return tv.Value
	case definition.Reference:
		return map[string]any{"ref": tv.Name}
	case definition.List:
		return renderArgs(tv)
	case *definition.StringSet:
		members := make([]any, 0, tv.Len())
		for _, m := range tv.Sorted() {
			members = append(members, m)
		}
		return map[string]any{"set": members}
	case *definition.Definition:
		bean := map[string]any{"type": tv.TypeName}
		if len(tv.ConstructorArgs) > 0 {
			bean["constructorArgs"] = renderArgs(tv.ConstructorArgs)
		}
		if len(tv.Properties) > 0 {
			props := make([]any, 0, len(tv.Properties))
			for _, p := range renderProperties(tv.Properties) {
				props = append(props, map[string]any{"name": p.Name, "value": p.Value})
			}
			bean["properties"] = props
		}
		return map[string]any{"bean": bean}
	case nil:
		return nil
	default:
		return fmt.Sprint(v)
	}
}

func renderArgs(values []definition.Value) []any {
	if len(values) == 0 {
		return []any{}
	}
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, Render(v))
	}
	return out
}

func renderProperties(props []definition.PropertyValue) []Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]Property, 0, len(props))
	for _, p := range props {
		out = append(out, Property{Name: p.Name, Value: Render(p.Value)})
	}
	return out
}
