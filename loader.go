/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mapperconfig

import (
	"context"
	"fmt"

	"github.com/suparena/mapperconfig/mongoconfig"
	"github.com/suparena/mapperconfig/registry"
	"github.com/suparena/mapperconfig/xmlconfig"
)

// Result is the outcome of loading configuration: the populated registry and
// the problems reported along the way.
type Result struct {
	Registry registry.Registry
	Problems *xmlconfig.Problems
}

// NewReader returns a reader with every built-in namespace handler registered.
func NewReader() *xmlconfig.Reader {
	r := xmlconfig.NewReader()
	r.RegisterNamespace(mongoconfig.Namespace, mongoconfig.NewNamespaceHandler())
	return r
}

// LoadFiles reads the documents at paths, in order, into one new registry.
// The returned error covers hard failures only; reported problems are in
// Result.Problems. Every load function wraps hard failures the same way.
func LoadFiles(ctx context.Context, paths []string, opts ...xmlconfig.Option) (*Result, error) {
	pc := newParserContext(ctx, opts)
	r := NewReader()
	for _, path := range paths {
		if err := r.ReadFile(pc, path); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	return &Result{Registry: pc.Registry, Problems: pc.Problems}, nil
}

// LoadFile reads a single document into a new registry.
func LoadFile(ctx context.Context, path string, opts ...xmlconfig.Option) (*Result, error) {
	return LoadFiles(ctx, []string{path}, opts...)
}

// LoadBytes reads a document held in memory into a new registry.
func LoadBytes(ctx context.Context, data []byte, opts ...xmlconfig.Option) (*Result, error) {
	pc := newParserContext(ctx, opts)
	if err := NewReader().ReadBytes(pc, data); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &Result{Registry: pc.Registry, Problems: pc.Problems}, nil
}

func newParserContext(ctx context.Context, opts []xmlconfig.Option) *xmlconfig.ParserContext {
	all := append([]xmlconfig.Option{xmlconfig.WithContext(ctx)}, opts...)
	return xmlconfig.NewParserContext(registry.New(), all...)
}
