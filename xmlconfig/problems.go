/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xmlconfig

import (
	"errors"
	"fmt"

	mcerrors "github.com/suparena/mapperconfig/errors"
)

// Severity of a reported problem.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Policy decides whether a reported error aborts loading.
type Policy int

const (
	// PolicyCollect records errors and lets loading continue.
	PolicyCollect Policy = iota
	// PolicyFailFast turns the first reported error into a returned error.
	PolicyFailFast
)

// Problem is one configuration diagnostic.
type Problem struct {
	Severity Severity
	Message  string
	// Source is the path of the offending element.
	Source string
}

// String returns a formatted diagnostic line.
func (p Problem) String() string {
	if p.Source != "" {
		return fmt.Sprintf("%s: %s: %s", p.Severity, p.Source, p.Message)
	}
	return fmt.Sprintf("%s: %s", p.Severity, p.Message)
}

// Problems collects diagnostics reported while reading configuration.
// It is not safe for concurrent use; loading is single-threaded.
type Problems struct {
	policy Policy
	items  []Problem
}

// NewProblems creates an empty collector with the given policy.
func NewProblems(policy Policy) *Problems {
	return &Problems{policy: policy}
}

// Policy returns the collector's policy.
func (p *Problems) Policy() Policy {
	return p.policy
}

// AddError records an error. Under PolicyFailFast the matching
// *errors.ConfigError is returned; otherwise the result is nil.
func (p *Problems) AddError(message, source string) error {
	p.items = append(p.items, Problem{Severity: SeverityError, Message: message, Source: source})
	if p.policy == PolicyFailFast {
		return mcerrors.NewConfigError(source, message)
	}
	return nil
}

// AddWarning records a warning. Warnings never abort loading.
func (p *Problems) AddWarning(message, source string) {
	p.items = append(p.items, Problem{Severity: SeverityWarning, Message: message, Source: source})
}

// All returns every problem in report order.
func (p *Problems) All() []Problem {
	out := make([]Problem, len(p.items))
	copy(out, p.items)
	return out
}

// Errors returns the error problems.
func (p *Problems) Errors() []Problem {
	return p.filter(SeverityError)
}

// Warnings returns the warning problems.
func (p *Problems) Warnings() []Problem {
	return p.filter(SeverityWarning)
}

func (p *Problems) filter(s Severity) []Problem {
	var out []Problem
	for _, item := range p.items {
		if item.Severity == s {
			out = append(out, item)
		}
	}
	return out
}

// HasErrors returns true if any error was reported.
func (p *Problems) HasErrors() bool {
	return len(p.Errors()) > 0
}

// Err returns the reported errors joined into one, or nil.
func (p *Problems) Err() error {
	var errs []error
	for _, item := range p.Errors() {
		errs = append(errs, mcerrors.NewConfigError(item.Source, item.Message))
	}
	return errors.Join(errs...)
}
