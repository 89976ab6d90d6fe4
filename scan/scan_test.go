/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/mapperconfig/errors"
)

const testModels = "github.com/suparena/mapperconfig/scan/testmodels"

func TestPackageScanner_FindCandidates(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}

	scanner := NewPackageScanner("")
	names, err := scanner.FindCandidates(context.Background(), testModels)
	require.NoError(t, err)

	assert.Equal(t, []string{
		testModels + ".Club",
		testModels + ".Rating",
		testModels + ".RatingSystem",
		testModels + "/audit.Event",
	}, names)
}

func TestPackageScanner_CustomMarkers(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}

	scanner := NewPackageScanner("", MarkerPersistent)
	names, err := scanner.FindCandidates(context.Background(), testModels+"/...")
	require.NoError(t, err)

	assert.Equal(t, []string{testModels + ".Rating"}, names)
}

func TestPackageScanner_EmptyBase(t *testing.T) {
	_, err := NewPackageScanner("").FindCandidates(context.Background(), "  ")
	assert.True(t, errors.IsScanFailed(err))
}

func TestStaticScanner(t *testing.T) {
	scanner := NewStaticScanner()
	scanner.Register("com.example/model.Foo", MarkerDocument)
	scanner.Register("com.example/model.Bar", MarkerPersistent)
	scanner.Register("com.example/model/sub.Baz", MarkerDocument)
	scanner.Register("com.example/model.Plain")
	scanner.Register("com.example/modelx.Other", MarkerDocument)

	names, err := scanner.FindCandidates(context.Background(), "com.example/model")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"com.example/model.Bar",
		"com.example/model.Foo",
		"com.example/model/sub.Baz",
	}, names)
}

func TestStaticScanner_ImportPathBoundaries(t *testing.T) {
	scanner := NewStaticScanner()
	scanner.Register("com.example.model.Foo", MarkerDocument)
	scanner.Register("com.example.model.sub.Baz", MarkerDocument)

	names, err := scanner.FindCandidates(context.Background(), "com.example.model")
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.model.Foo"}, names, "dotted names are not split into subpackages")

	names, err = scanner.FindCandidates(context.Background(), "com.example.model.sub")
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.model.sub.Baz"}, names)
}

func TestStaticScanner_DuplicatePanics(t *testing.T) {
	scanner := NewStaticScanner()
	scanner.Register("com.example/model.Foo", MarkerDocument)

	assert.Panics(t, func() {
		scanner.Register("com.example/model.Foo", MarkerDocument)
	})
}

func TestStaticScanner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticScanner().FindCandidates(ctx, "com.example/model")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirective(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"//mongo:document", true},
		{"//mongo:document collection=people", true},
		{"// mongo:document", false},
		{"//mongo:documents", false},
		{"// see //mongo:document", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, directive(tt.line, MarkerDocument))
		})
	}
}
