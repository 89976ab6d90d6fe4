/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/suparena/mapperconfig/definition"
	"github.com/suparena/mapperconfig/errors"
)

func TestRegistry(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		reg := New()
		def := definition.Generic("mapping.MongoMappingContext").Definition()

		if reg.Contains("mappingContext") {
			t.Fatal("Empty registry should not contain mappingContext")
		}

		if err := reg.Register("mappingContext", def); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		if !reg.Contains("mappingContext") {
			t.Fatal("Registry should contain mappingContext")
		}

		got, err := reg.Get("mappingContext")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if got != def {
			t.Fatal("Retrieved definition is not the registered one")
		}

		if reg.Count() != 1 {
			t.Fatalf("Expected 1 definition, got %d", reg.Count())
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		reg := New()
		_ = reg.Register("mongo", &definition.Definition{})

		err := reg.Register("mongo", &definition.Definition{})
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("Expected already registered error, got %v", err)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		reg := New()

		_, err := reg.Get("myConverter")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got %v", err)
		}
	})

	t.Run("EmptyName", func(t *testing.T) {
		reg := New()

		err := reg.Register("", &definition.Definition{})
		if !errors.IsConfigError(err) {
			t.Fatalf("Expected config error, got %v", err)
		}
	})
}

func TestAliases(t *testing.T) {
	reg := New()
	def := &definition.Definition{TypeName: "x"}
	_ = reg.Register("primary", def)

	if err := reg.RegisterAlias("primary", "secondary"); err != nil {
		t.Fatalf("Failed to register alias: %v", err)
	}
	if err := reg.RegisterAlias("primary", "another"); err != nil {
		t.Fatalf("Failed to register alias: %v", err)
	}

	got, err := reg.Get("secondary")
	if err != nil || got != def {
		t.Fatalf("Alias should resolve to primary, got %v, %v", got, err)
	}
	if !reg.Contains("another") {
		t.Fatal("Contains should resolve aliases")
	}
	if aliases := reg.Aliases("primary"); !reflect.DeepEqual(aliases, []string{"another", "secondary"}) {
		t.Fatalf("Unexpected aliases %v", aliases)
	}

	if err := reg.RegisterAlias("other", "primary"); !errors.IsAlreadyExists(err) {
		t.Fatalf("Alias must not shadow a definition name, got %v", err)
	}
	if err := reg.Register("secondary", def); !errors.IsAlreadyExists(err) {
		t.Fatalf("Name must not shadow an alias, got %v", err)
	}
	if reg.Count() != 1 {
		t.Fatalf("Aliases must not count as definitions, got %d", reg.Count())
	}

	t.Run("Chain", func(t *testing.T) {
		if err := reg.RegisterAlias("secondary", "tertiary"); err != nil {
			t.Fatalf("Failed to register alias of alias: %v", err)
		}
		if err := reg.RegisterAlias("tertiary", "quaternary"); err != nil {
			t.Fatalf("Failed to register alias of alias: %v", err)
		}
		if !reg.Contains("quaternary") {
			t.Fatal("Contains should follow alias chains")
		}
		got, err := reg.Get("quaternary")
		if err != nil || got != def {
			t.Fatalf("Alias chain should resolve to primary, got %v, %v", got, err)
		}
	})

	t.Run("Cycle", func(t *testing.T) {
		reg := New()
		if err := reg.RegisterAlias("later", "early"); err != nil {
			t.Fatalf("Alias of an unregistered name should be accepted: %v", err)
		}
		if err := reg.RegisterAlias("early", "middle"); err != nil {
			t.Fatalf("Failed to register alias: %v", err)
		}
		if err := reg.RegisterAlias("middle", "later"); !errors.IsConfigError(err) {
			t.Fatalf("Expected cycle to be rejected, got %v", err)
		}
		if reg.Contains("later") {
			t.Fatal("Rejected alias must not be registered")
		}

		_ = reg.Register("later", &definition.Definition{})
		if !reg.Contains("middle") {
			t.Fatal("Forward alias chain should resolve once the name is registered")
		}
	})
}

func TestNamesKeepRegistrationOrder(t *testing.T) {
	reg := New()
	for _, name := range []string{"mappingContext", "postProcessor", "indexCreationHelper", "mappingConverter"} {
		if err := reg.Register(name, &definition.Definition{}); err != nil {
			t.Fatal(err)
		}
	}

	expected := []string{"mappingContext", "postProcessor", "indexCreationHelper", "mappingConverter"}
	if names := reg.Names(); !reflect.DeepEqual(names, expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
}

func TestThreadSafety(t *testing.T) {
	reg := New()
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(id int) {
			_ = reg.Register(fmt.Sprintf("def%d", id), &definition.Definition{})
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		go func() {
			reg.Names()
			reg.Contains("def0")
			done <- true
		}()
	}

	for i := 0; i < 20; i++ {
		<-done
	}

	if reg.Count() != 10 {
		t.Fatalf("Expected 10 definitions, got %d", reg.Count())
	}
}
