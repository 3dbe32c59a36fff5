package session

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type run struct {
	Seed     uint64
	Treasure int
}

func TestMemoryStore_GetPut(t *testing.T) {
	store := NewMemoryStore[run]()
	ctx := context.Background()

	if err := store.Put(ctx, "r1", run{Seed: 7, Treasure: 420}); err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}

	got, ok, err := store.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist")
	}
	if got.Treasure != 420 {
		t.Errorf("Expected treasure 420, got %d", got.Treasure)
	}

	if _, ok, _ = store.Get(ctx, "missing"); ok {
		t.Error("Expected value to not exist")
	}
}

func TestMemoryStore_ListKeepsFirstPutOrder(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()

	for _, kv := range []struct {
		id string
		v  int
	}{{"b", 1}, {"a", 2}, {"b", 3}, {"c", 4}} {
		if err := store.Put(ctx, kv.id, kv.v); err != nil {
			t.Fatalf("Unexpected error on Put: %v", err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("Unexpected error on List: %v", err)
	}
	want := []int{3, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestMemoryStore_PutCancelled(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Put(ctx, "x", 1); err == nil {
		t.Error("Expected an error for a cancelled context")
	}
	if got, _ := store.List(context.Background()); len(got) != 0 {
		t.Errorf("Expected empty store, got %v", got)
	}
}

func TestMemoryStore_NewID(t *testing.T) {
	store := NewMemoryStore[string]()

	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.NewID()
		if ids[id] {
			t.Errorf("Duplicate ID generated: %s", id)
		}
		ids[id] = true
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected a UUID, got %q: %v", id, err)
		}
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if err := store.Put(ctx, store.NewID(), v); err != nil {
				t.Errorf("Error in concurrent Put: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("Unexpected error on List: %v", err)
	}
	if len(got) != 50 {
		t.Errorf("Expected 50 runs, got %d", len(got))
	}
}
