/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scan

import (
	"context"
	"strings"
)

// Marker is a type-declaration directive that flags a type as a persistent entity.
type Marker string

const (
	// MarkerDocument flags a type stored as a top-level document.
	MarkerDocument Marker = "mongo:document"
	// MarkerPersistent flags any persistent type, document or embedded.
	MarkerPersistent Marker = "mapping:persistent"
)

// DefaultMarkers are the markers an entity scan includes unless told otherwise.
var DefaultMarkers = []Marker{MarkerDocument, MarkerPersistent}

// Scanner finds entity types below a base package.
type Scanner interface {
	// FindCandidates returns fully-qualified names ("importpath.TypeName") of
	// marked types in basePackage and its subpackages. basePackage is a Go
	// import path, not a dotted package name.
	FindCandidates(ctx context.Context, basePackage string) ([]string, error)
}

// ScannerFunc adapts a function to the Scanner interface.
type ScannerFunc func(ctx context.Context, basePackage string) ([]string, error)

// FindCandidates calls f.
func (f ScannerFunc) FindCandidates(ctx context.Context, basePackage string) ([]string, error) {
	return f(ctx, basePackage)
}

// directive reports whether a comment line carries marker m.
func directive(line string, m Marker) bool {
	text := "//" + string(m)
	return line == text || strings.HasPrefix(line, text+" ")
}

// packageOf splits "importpath.TypeName" and returns the import path.
func packageOf(qualified string) string {
	i := strings.LastIndex(qualified, ".")
	if i < 0 {
		return ""
	}
	return qualified[:i]
}

// within reports whether pkg is base or one of its subpackages.
func within(pkg, base string) bool {
	return pkg == base || strings.HasPrefix(pkg, base+"/")
}
