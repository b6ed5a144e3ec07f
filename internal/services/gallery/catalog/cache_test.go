package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingSource struct {
	calls   int
	catalog Catalog
	err     error
}

func (s *countingSource) Load(context.Context) (Catalog, error) {
	s.calls++
	if s.err != nil {
		return Catalog{}, s.err
	}
	return s.catalog, nil
}

func TestSnapshotCacheDisabledWithZeroTTL(t *testing.T) {
	t.Parallel()

	src := &countingSource{catalog: New([]ImageRecord{{ID: "a"}})}
	cache := NewSnapshotCache(src, 0)
	for i := 0; i < 3; i++ {
		if _, err := cache.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	if src.calls != 3 {
		t.Fatalf("source calls = %d, want 3", src.calls)
	}
}

func TestSnapshotCacheServesFreshSnapshot(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &countingSource{catalog: New([]ImageRecord{{ID: "a"}})}
	cache := NewSnapshotCache(src, time.Minute)
	cache.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		catalog, err := cache.Load(context.Background())
		if err != nil || catalog.Len() != 1 {
			t.Fatalf("Load() = (%d, %v)", catalog.Len(), err)
		}
	}
	if src.calls != 1 {
		t.Fatalf("source calls = %d, want 1", src.calls)
	}

	now = now.Add(2 * time.Minute)
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("source calls after expiry = %d, want 2", src.calls)
	}

	cache.Invalidate()
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.calls != 3 {
		t.Fatalf("source calls after invalidate = %d, want 3", src.calls)
	}
}

func TestSnapshotCacheDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	src := &countingSource{err: context.Canceled}
	cache := NewSnapshotCache(src, time.Hour)
	if _, err := cache.Load(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v", err)
	}
	src.err = nil
	src.catalog = New([]ImageRecord{{ID: "a"}})
	catalog, err := cache.Load(context.Background())
	if err != nil || catalog.Len() != 1 {
		t.Fatalf("Load() = (%d, %v)", catalog.Len(), err)
	}
	if src.calls != 2 {
		t.Fatalf("source calls = %d, want 2", src.calls)
	}
}
