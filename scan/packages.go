/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scan

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	mcerrors "github.com/suparena/mapperconfig/errors"
)

// LoadMode is what the scanner asks go/packages for; markers live in doc
// comments, so syntax is enough and type checking is skipped.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// PackageScanner finds marked types by loading Go source with go/packages.
type PackageScanner struct {
	dir     string
	markers []Marker
}

// NewPackageScanner creates a scanner that runs the build tool in dir
// (the current directory when empty). Without markers, DefaultMarkers apply.
func NewPackageScanner(dir string, markers ...Marker) *PackageScanner {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &PackageScanner{dir: dir, markers: markers}
}

// FindCandidates loads basePackage/... and returns the marked types, sorted.
func (s *PackageScanner) FindCandidates(ctx context.Context, basePackage string) ([]string, error) {
	base := strings.TrimSuffix(strings.TrimSpace(basePackage), "/...")
	if base == "" {
		return nil, mcerrors.NewScanError(basePackage, errors.New("empty base package"))
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     s.dir,
	}

	pkgs, err := packages.Load(cfg, base+"/...")
	if err != nil {
		return nil, mcerrors.NewScanError(base, fmt.Errorf("failed to load packages: %w", err))
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, mcerrors.NewScanError(base, errors.Join(errs...))
	}

	seen := make(map[string]struct{})
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, name := range s.markedTypes(file) {
				seen[pkg.PkgPath+"."+name] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// markedTypes returns the names of type declarations in file whose doc
// comment carries one of the scanner's markers.
func (s *PackageScanner) markedTypes(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			// An ungrouped declaration keeps its doc on the GenDecl.
			docs := []*ast.CommentGroup{ts.Doc}
			if !gen.Lparen.IsValid() {
				docs = append(docs, gen.Doc)
			}
			if s.marked(docs) {
				names = append(names, ts.Name.Name)
			}
		}
	}
	return names
}

func (s *PackageScanner) marked(groups []*ast.CommentGroup) bool {
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			for _, m := range s.markers {
				if directive(c.Text, m) {
					return true
				}
			}
		}
	}
	return false
}
