/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xmlconfig

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/suparena/mapperconfig/definition"
	"github.com/suparena/mapperconfig/errors"
	"github.com/suparena/mapperconfig/registry"
)

const testHeader = `<beans xmlns="http://suparena.com/schema/beans"
	xmlns:p="http://suparena.com/schema/p"
	xmlns:x="http://example.com/schema/x"
	xmlns:y="http://example.com/schema/y">`

func wrap(inner string) []byte {
	return []byte(testHeader + inner + "</beans>")
}

func testContext(opts ...Option) *ParserContext {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewParserContext(registry.New(), append([]Option{WithLogger(logger)}, opts...)...)
}

// widgetParser registers nothing itself and returns a "x.Widget" definition.
type widgetParser struct{}

func (widgetParser) ResolveID(el *etree.Element) string {
	if id := Attr(el, "id"); id != "" {
		return id
	}
	return "widget"
}

func (widgetParser) Parse(el *etree.Element, pc *ParserContext) (*definition.Definition, error) {
	if Attr(el, "broken") == "true" {
		return nil, pc.Error("widget is broken", el)
	}
	return definition.Generic("x.Widget").
		AddPropertyValue("size", definition.Literal{Value: Attr(el, "size")}).
		Definition(), nil
}

func TestReader_Beans(t *testing.T) {
	pc := testContext()
	doc := wrap(`
		<bean id="mongo" class="driver.Client" p:uri="mongodb://localhost"/>
		<bean name="template,tpl; primaryTemplate" class="core.Template">
			<constructor-arg ref="mongo"/>
			<property name="writeConcern" value="majority"/>
		</bean>
		<alias name="mongo" alias="client"/>`)

	if err := NewReader().ReadBytes(pc, doc); err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}

	if got := pc.Registry.Names(); strings.Join(got, ",") != "mongo,template" {
		t.Errorf("Names() = %v, want [mongo template]", got)
	}

	mongo, err := pc.Registry.Get("client")
	if err != nil {
		t.Fatalf("alias lookup failed: %v", err)
	}
	if uri, _ := mongo.Property("uri"); uri != (definition.Literal{Value: "mongodb://localhost"}) {
		t.Errorf("uri = %v, want mongodb://localhost", uri)
	}

	tpl, err := pc.Registry.Get("primaryTemplate")
	if err != nil {
		t.Fatalf("name alias lookup failed: %v", err)
	}
	if arg, _ := tpl.ConstructorArg(0); arg != (definition.Reference{Name: "mongo"}) {
		t.Errorf("constructor arg = %v, want ref(mongo)", arg)
	}
	if tpl.Source != "/beans/bean" {
		t.Errorf("Source = %q, want /beans/bean", tpl.Source)
	}
	if aliases := pc.Registry.Aliases("template"); strings.Join(aliases, ",") != "primaryTemplate,tpl" {
		t.Errorf("Aliases() = %v", aliases)
	}

	if problems := pc.Problems.All(); len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
}

func TestReader_NamespaceHandler(t *testing.T) {
	r := NewReader()
	r.RegisterNamespace("http://example.com/schema/x", Parsers{"widget": widgetParser{}})

	t.Run("dispatch", func(t *testing.T) {
		pc := testContext()
		if err := r.ReadBytes(pc, wrap(`<x:widget size="3"/><x:widget id="other" size="4"/>`)); err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		def, err := pc.Registry.Get("widget")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if def.Source != "/beans/x:widget" {
			t.Errorf("Source = %q, want /beans/x:widget", def.Source)
		}
		if !pc.Registry.Contains("other") {
			t.Error("expected second widget under its id")
		}
	})

	t.Run("duplicate id is fatal", func(t *testing.T) {
		pc := testContext()
		err := r.ReadBytes(pc, wrap(`<x:widget/><x:widget/>`))
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("expected already exists, got %v", err)
		}
	})

	t.Run("unknown namespace", func(t *testing.T) {
		pc := testContext()
		if err := r.ReadBytes(pc, wrap(`<y:thing/><bean id="a" class="A"/>`)); err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		if errs := pc.Problems.Errors(); len(errs) != 1 || errs[0].Source != "/beans/y:thing" {
			t.Errorf("Errors() = %v", errs)
		}
		if !pc.Registry.Contains("a") {
			t.Error("reading should continue past the unknown element")
		}
	})

	t.Run("unknown element", func(t *testing.T) {
		pc := testContext()
		if err := r.ReadBytes(pc, wrap(`<x:gadget/>`)); err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		if !pc.Problems.HasErrors() {
			t.Error("expected a problem for <x:gadget>")
		}
	})

	t.Run("skipped element", func(t *testing.T) {
		pc := testContext()
		if err := r.ReadBytes(pc, wrap(`<x:widget broken="true"/>`)); err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		if pc.Registry.Count() != 0 {
			t.Errorf("Count() = %d, want 0", pc.Registry.Count())
		}
	})
}

func TestReader_FailFast(t *testing.T) {
	pc := testContext(WithPolicy(PolicyFailFast))
	err := NewReader().ReadBytes(pc, wrap(`<bean id="a"/><bean id="b" class="B"/>`))
	if !errors.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if pc.Registry.Contains("b") {
		t.Error("reading should stop at the first error")
	}
}

func TestReader_Root(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"beans namespace", `<beans xmlns="http://suparena.com/schema/beans"/>`, false},
		{"no namespace", `<beans/>`, false},
		{"wrong element", `<config/>`, true},
		{"wrong namespace", `<beans xmlns="http://example.com/other"/>`, true},
		{"empty document", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewReader().ReadBytes(testContext(), []byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReader_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beans.xml")
	if err := os.WriteFile(path, wrap(`<bean id="a" class="A"/>`), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	pc := testContext()
	if err := NewReader().ReadFile(pc, path); err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !pc.Registry.Contains("a") {
		t.Error("expected bean a")
	}

	if err := NewReader().ReadFile(testContext(), filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}
