/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scan

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// StaticScanner answers scans from types registered up front, typically by
// generated init() code in binaries that ship without source. Types are
// registered as "importpath.TypeName":
//
//	func init() {
//	    entities.Register("example.com/app/model.Person", scan.MarkerDocument)
//	}
type StaticScanner struct {
	mu      sync.RWMutex
	types   map[string][]Marker
	markers []Marker
}

// NewStaticScanner creates an empty scanner matching the given markers,
// or DefaultMarkers when none are given.
func NewStaticScanner(markers ...Marker) *StaticScanner {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &StaticScanner{
		types:   make(map[string][]Marker),
		markers: markers,
	}
}

// Register records a fully-qualified type name and its markers.
// Registering the same name twice panics to prevent accidental overrides.
func (s *StaticScanner) Register(qualifiedName string, markers ...Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.types[qualifiedName]; exists {
		panic(fmt.Sprintf("static scanner: type %q already registered", qualifiedName))
	}
	s.types[qualifiedName] = markers
}

// FindCandidates returns the registered types below basePackage carrying
// a matching marker, sorted. basePackage is a Go import path, optionally
// ending in "/..."; subpackages are matched on "/" boundaries only, so a
// dotted name such as "com.example.model" does not cover "com.example.model.sub".
func (s *StaticScanner) FindCandidates(ctx context.Context, basePackage string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(strings.TrimSpace(basePackage), "/...")

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for name, markers := range s.types {
		if !within(packageOf(name), base) || !s.matches(markers) {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (s *StaticScanner) matches(markers []Marker) bool {
	for _, have := range markers {
		for _, want := range s.markers {
			if have == want {
				return true
			}
		}
	}
	return false
}
