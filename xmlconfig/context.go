/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xmlconfig

import (
	"context"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/suparena/mapperconfig/registry"
	"github.com/suparena/mapperconfig/scan"
)

// ParserContext carries everything a parser needs while one document is read.
type ParserContext struct {
	// Context bounds blocking collaborators such as the entity scanner.
	Context context.Context
	// Registry receives the parsed definitions.
	Registry registry.Registry
	// Problems collects diagnostics.
	Problems *Problems
	// Delegate parses inline bean definitions.
	Delegate *Delegate
	// Scanner finds entity types for base-package attributes. May be nil.
	Scanner scan.Scanner
	Logger  *slog.Logger
}

// Option configures a ParserContext.
type Option func(*ParserContext)

// WithContext sets the context handed to blocking collaborators.
func WithContext(ctx context.Context) Option {
	return func(pc *ParserContext) {
		pc.Context = ctx
	}
}

// WithScanner sets the entity scanner.
func WithScanner(s scan.Scanner) Option {
	return func(pc *ParserContext) {
		pc.Scanner = s
	}
}

// WithPolicy sets the problem reporting policy.
func WithPolicy(policy Policy) Option {
	return func(pc *ParserContext) {
		pc.Problems = NewProblems(policy)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(pc *ParserContext) {
		pc.Logger = logger
	}
}

// WithDelegate replaces the bean definition delegate.
func WithDelegate(d *Delegate) Option {
	return func(pc *ParserContext) {
		pc.Delegate = d
	}
}

// NewParserContext creates a context over reg. Defaults: background context,
// collecting policy, a delegate with the property decorator, no scanner,
// and slog.Default().
func NewParserContext(reg registry.Registry, opts ...Option) *ParserContext {
	pc := &ParserContext{
		Context:  context.Background(),
		Registry: reg,
		Problems: NewProblems(PolicyCollect),
		Delegate: NewDelegate(),
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

// Error reports a configuration error at el. The returned error is non-nil
// only when the policy says loading must stop.
func (pc *ParserContext) Error(message string, el *etree.Element) error {
	source := Path(el)
	pc.Logger.Warn("Configuration problem.", "source", source, "problem", message)
	return pc.Problems.AddError(message, source)
}

// Warning reports a non-fatal configuration problem at el.
func (pc *ParserContext) Warning(message string, el *etree.Element) {
	source := Path(el)
	pc.Logger.Warn("Configuration warning.", "source", source, "problem", message)
	pc.Problems.AddWarning(message, source)
}
