/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a named definition is not in the registry
	ErrNotFound = errors.New("definition not found")

	// ErrAlreadyExists is returned when a name is registered twice
	ErrAlreadyExists = errors.New("definition already registered")

	// ErrInvalidConfig is returned when a configuration element is malformed
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScanFailed is returned when entity scanning cannot complete
	ErrScanFailed = errors.New("entity scan failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents a stored item that does not exist
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NoSuchDefinitionError represents a reference to a name the registry does not hold
type NoSuchDefinitionError struct {
	Name string
}

func (e *NoSuchDefinitionError) Error() string {
	return fmt.Sprintf("no definition named %q", e.Name)
}

func (e *NoSuchDefinitionError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyRegisteredError represents a second registration under a taken name
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("definition %q already registered", e.Name)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ConfigError represents a malformed configuration element.
// Source is the path of the offending element, if known.
type ConfigError struct {
	Source  string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("configuration problem at %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("configuration problem: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ScanError represents a failed entity scan of a base package
type ScanError struct {
	BasePackage string
	Err         error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning %q: %v", e.BasePackage, e.Err)
}

func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailed
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(typ, key string) error {
	return &NotFoundError{Type: typ, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNoSuchDefinitionError creates a new NoSuchDefinitionError
func NewNoSuchDefinitionError(name string) error {
	return &NoSuchDefinitionError{Name: name}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(name string) error {
	return &AlreadyRegisteredError{Name: name}
}

// NewConfigError creates a new ConfigError
func NewConfigError(source, message string) error {
	return &ConfigError{Source: source, Message: message}
}

// NewScanError creates a new ScanError
func NewScanError(basePackage string, err error) error {
	return &ScanError{BasePackage: basePackage, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAlreadyExists checks if an error is an already registered error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsScanFailed checks if an error is a scan error
func IsScanFailed(err error) bool {
	return errors.Is(err, ErrScanFailed)
}
