/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/suparena/mapperconfig/errors"
	"github.com/suparena/mapperconfig/snapshot"
	"github.com/suparena/mapperconfig/snapshot/mock"
)

func TestMockStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		store := mock.New()

		snap := &snapshot.Snapshot{
			ID:      "snap-1",
			Entries: []snapshot.Entry{{Name: "mappingContext", Type: "mapping.MongoMappingContext"}},
		}
		if err := store.Save(ctx, snap); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "snap-1")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.Entries) != 1 || loaded.Entries[0].Name != "mappingContext" {
			t.Fatalf("Loaded snapshot mismatch: %+v", loaded)
		}

		_, err = store.Load(ctx, "snap-2")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}

		store.Clear()
		if store.Count() != 0 {
			t.Fatalf("Expected empty store after Clear, got %d", store.Count())
		}
	})

	t.Run("Validation", func(t *testing.T) {
		store := mock.New()

		if err := store.Save(ctx, nil); !errors.IsValidationError(err) {
			t.Errorf("Expected validation error for nil snapshot, got: %v", err)
		}
		if err := store.Save(ctx, &snapshot.Snapshot{}); !errors.IsValidationError(err) {
			t.Errorf("Expected validation error for empty ID, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		saveErr := fmt.Errorf("throttled")
		loadErr := fmt.Errorf("unavailable")
		store := mock.New().WithSaveError(saveErr).WithLoadError(loadErr)

		if err := store.Save(ctx, &snapshot.Snapshot{ID: "x"}); err != saveErr {
			t.Fatalf("Expected save error, got: %v", err)
		}
		if _, err := store.Load(ctx, "x"); err != loadErr {
			t.Fatalf("Expected load error, got: %v", err)
		}
	})

	t.Run("ConcurrentSaves", func(t *testing.T) {
		store := mock.New()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = store.Save(ctx, &snapshot.Snapshot{ID: fmt.Sprintf("snap-%d", i)})
			}(i)
		}
		wg.Wait()

		if store.Count() != 20 {
			t.Fatalf("Expected 20 snapshots, got %d", store.Count())
		}
		if len(store.IDs()) != 20 {
			t.Fatalf("Expected 20 IDs, got %d", len(store.IDs()))
		}
	})
}
