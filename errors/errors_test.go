/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNoSuchDefinitionError(t *testing.T) {
	err := NewNoSuchDefinitionError("myConverter")

	expected := `no definition named "myConverter"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NoSuchDefinitionError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NoSuchDefinitionError")
	}
}

func TestAlreadyRegisteredError(t *testing.T) {
	err := NewAlreadyRegisteredError("mappingContext")

	expected := `definition "mappingContext" already registered`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyRegisteredError")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		message  string
		expected string
	}{
		{
			name:     "with source",
			source:   "/beans/mapping-converter/custom-converters/converter",
			message:  "missing ref",
			expected: "configuration problem at /beans/mapping-converter/custom-converters/converter: missing ref",
		},
		{
			name:     "without source",
			source:   "",
			message:  "missing ref",
			expected: "configuration problem: missing ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigError(tt.source, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsConfigError(err) {
				t.Error("IsConfigError should return true for ConfigError")
			}
		})
	}
}

func TestScanError(t *testing.T) {
	cause := errors.New("go list failed")
	err := NewScanError("example.com/model", cause)

	if !IsScanFailed(err) {
		t.Error("IsScanFailed should return true for ScanError")
	}

	if !errors.Is(err, cause) {
		t.Error("ScanError should unwrap to its cause")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNoSuchDefinitionError("mongo")
	wrapped := fmt.Errorf("resolving converter: %w", original)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}

	var nsd *NoSuchDefinitionError
	if !errors.As(wrapped, &nsd) || nsd.Name != "mongo" {
		t.Errorf("Expected to unwrap NoSuchDefinitionError for mongo, got %v", nsd)
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidConfig,
		ErrScanFailed,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Snapshot", "snap-1")

	expected := `Snapshot with key "snap-1" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{"with field", "id", "must not be empty", `validation failed for field "id": must not be empty`},
		{"without field", "", "snapshot is nil", "validation failed: snapshot is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}
